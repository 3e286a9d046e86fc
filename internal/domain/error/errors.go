package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation       = 4001
	CodeInvalidCardType  = 4002
	CodeNotAuthenticated = 4010
	CodeCardNotFound     = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is the root of every field-level validation failure
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCardType is returned when the card type is not one of the supported networks
	ErrInvalidCardType = errors.New("invalid card type")

	// ErrCardNotFound is returned when no card in the collection matches the requested ID
	ErrCardNotFound = errors.New("card not found")

	// ErrNotAuthenticated is returned when an operation needs a signed-in user and the session is anonymous
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrKeyNotFound is returned by the persistence adapter when a key is absent
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptRecord marks stored JSON that could not be decoded; it is logged
	// and recovered from, never surfaced to a caller
	ErrCorruptRecord = errors.New("corrupt stored record")

	// ErrStorageUnavailable is returned when the durable store cannot be opened
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCardType):
		return CodeInvalidCardType
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrCardNotFound):
		return CodeCardNotFound
	default:
		return CodeInternalServer
	}
}

// FieldError reports a validation failure on a single named field. The field
// name matches the form field the caller submitted, so the presentation layer
// can attach the message to the right input.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface for FieldError
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes every FieldError match ErrValidation
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *FieldError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"message":    e.Message,
		"error_code": CodeValidation,
	}
}

// NewFieldError creates a validation error for the given field
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// IsValidationError checks if the error is any field-level validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCardNotFound) || errors.Is(err, ErrKeyNotFound)
}
