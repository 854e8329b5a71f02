package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// Error codes used across the service layer.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodePastPickupDate    = "PAST_PICKUP_DATE"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeDuplicateTracking = "DUPLICATE_TRACKING_NUMBER"
	CodeNotFound          = "NOT_FOUND"
	CodeWeakPassword      = "WEAK_PASSWORD"
)

type AppError struct {
	Code    string
	Message string
	Err     error

	// Fields carries per-field messages when Code is CodeValidation.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}
