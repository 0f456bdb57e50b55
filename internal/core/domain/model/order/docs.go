// Package order provides the Order aggregate of the dispatch domain.
//
// The package includes:
//   - Order: identity, customers, and the derived status/transfer projection
//   - Status: the persisted lifecycle state
//
// Key business rules:
//   - Status and the transfer flag are owned by assignment operations and are
//     recomputed from the full set of bound legs, never cached
//   - An order is a transfer when exactly one pickup and one delivery leg are
//     bound to the same truckload
//   - Completion is terminal for status; the transfer flag keeps tracking legs
package order
