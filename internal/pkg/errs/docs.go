// Package errs provides standardized error types for the marketplace service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds surfaced to callers:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: an order or product cannot be found
//   - UnauthenticatedError: no valid identity was presented
//   - ForbiddenError: the actor may not perform the operation
//   - InvalidStateError: the aggregate is not in a state that allows the operation
//   - ConcurrentModificationError: a conditional update lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Adapters classify failures with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a status code.
package errs
