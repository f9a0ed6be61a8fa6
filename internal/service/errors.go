package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned on any login failure. It deliberately
	// covers both unknown-username and wrong-password so a caller cannot
	// probe which usernames exist.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrPermissionDenied is returned when a principal operates on a
	// resource it does not own.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUserNotFound is returned when a syntactically valid token
	// references an account that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// FieldViolation ties a validation message to the request field that caused
// it.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates the field-level failures of one request. The
// messages are safe to return to the client verbatim.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// FileSizeError is returned when an uploaded file exceeds the size limit.
type FileSizeError struct {
	Message string
}

func (e *FileSizeError) Error() string { return e.Message }

// FileValidationError is returned when an uploaded file fails content
// inspection.
type FileValidationError struct {
	Message string
}

func (e *FileValidationError) Error() string { return e.Message }
