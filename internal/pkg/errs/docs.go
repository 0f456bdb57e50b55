// Package errs provides the error taxonomy shared by the dispatch core.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrConflict)
//   - a struct type carrying the details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Business failures (not found, conflict, invalid state, invalid input) are
// surfaced to callers unchanged. Any other failure raised while a unit of work
// is open is wrapped with WrapTx into a TransactionFailedError, which the
// transport layer reports as a generic failure.
package errs
