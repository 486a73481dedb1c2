// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError, ObjectAlreadyExistsError: storage lookups and inserts
//   - AddressIsInvalidError: geocoding failures
//   - ConflictError: operations that violate a state invariant
//   - MissingPropertyError: internal invariant violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers that need to branch on the category of a failure use KindOf instead
// of matching concrete types.
package errs
