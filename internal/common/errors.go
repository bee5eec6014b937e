// Package common defines shared constants and sentinel errors used across
// client and server layers of ContactVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors.
	// ErrorUnauthenticated: missing or unknown token on a protected call.
	// ErrorUnauthorized: wrong password at login.
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorUnauthorized    = errors.New("unauthorized")

	// ErrorForbidden: valid identity, but the resource belongs to someone else.
	ErrorForbidden = errors.New("forbidden")

	// ErrorConflict: duplicate username at registration.
	ErrorConflict = errors.New("already exists")
)

// FieldError describes a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated constraint found in a request.
// Validation accumulates violations instead of stopping at the first one,
// so the caller sees every problem in a single response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return "validation error: " + e.Fields[0].Field + ": " + e.Fields[0].Message
}

// AsValidationError returns the *ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
