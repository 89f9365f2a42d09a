// Package errs provides standardized error types for the Starwings service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of error scenarios:
//   - Input validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Operation outcomes: ObjectNotFoundError, AccessRefusedError, AlreadyExistsError,
//     InvalidTransitionError, PreconditionFailedError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAccessRefused)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Every public operation of the service fails atomically with exactly one of
// these errors; callers map the sentinel to a transport-level response and
// surface the reason to the user.
package errs
