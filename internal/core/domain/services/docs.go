// Package services provides domain services that span several aggregates of
// the dispatch domain and do not belong to any single one of them.
//
// The package includes:
//   - StopSequencer: keeps the stop positions of one truckload dense (1..N)
//   - BOLSequencer: derives the next bill of lading number for a month
package services
