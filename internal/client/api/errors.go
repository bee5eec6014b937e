package api

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/contactvault/internal/common"
)

// ErrUnavailable marks transport-level failures: the server could not be
// reached at all.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response decoded from the envelope. Message holds a
// plain error string; Fields is set instead when the server rejected the
// request with per-field validation errors.
type APIError struct {
	Status  int
	Message string
	Fields  []common.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return strings.Join(parts, "; ")
	}
	return e.Message
}
