package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateUsername      = errors.New("username already exists")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrInvalidSession         = errors.New("invalid session")
	ErrConversionFailed       = errors.New("conversion failed")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrInsufficientInput      = errors.New("at least 2 PDF files are required")
	ErrNoFileProvided         = errors.New("no file provided")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
