// Package errs defines the error taxonomy shared by the domain model, the
// application handlers, and the HTTP adapter.
//
// Four error families cover the failure modes the service distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ObjectNotFoundError: a referenced object does not exist
//   - ForbiddenError: the acting user lacks the required privilege
//
// Each family ships a sentinel variable (e.g. ErrValueIsRequired), a struct
// carrying the detail, constructors with and without a cause, and Error/Unwrap
// methods so callers can classify failures with errors.Is. The HTTP adapter
// relies on that classification to map errors to status codes.
package errs
