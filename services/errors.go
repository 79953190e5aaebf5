package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no live record matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrNameTaken means another restaurant already uses the requested name.
	ErrNameTaken = errors.New("restaurant name already exists")
)

// ValidationError carries a caller-facing message for rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
