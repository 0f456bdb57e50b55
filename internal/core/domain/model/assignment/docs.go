// Package assignment models the binding of an order leg (pickup or delivery)
// to a stop position on a truckload.
//
// The package includes:
//   - Assignment: the stop entity with its sequence number and completion flag
//   - Type: the pickup/delivery discriminator
//   - Leg: the projection used to derive order status and the transfer flag
package assignment
