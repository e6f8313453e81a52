package domain

import (
	"errors"
	"fmt"
)

// ErrValidation indicates a request parameter could not be used.
type ErrValidation struct {
	Field   string
	Value   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// IsValidation reports whether err wraps an *ErrValidation and returns it.
func IsValidation(err error) (*ErrValidation, bool) {
	var v *ErrValidation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
