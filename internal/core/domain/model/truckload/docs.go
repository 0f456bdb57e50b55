// Package truckload provides the Truckload aggregate: a driver's run, its
// draft/active/completed lifecycle and its bill of lading number.
//
// Key business rules:
//   - only a Draft truckload can be promoted
//   - only an Active truckload can be completed
//   - only a Completed truckload can be reopened, and it returns to Active
//   - a bill of lading number is assigned at most once
package truckload
