package validator

import "errors"

var (
	// ErrValidationFailed is matched by a non-empty Errors collection.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidField is matched by a FieldError produced from an invalid Result.
	ErrInvalidField = errors.New("invalid field")
)
