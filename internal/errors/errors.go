// Package errors provides custom error types for the Finanças Pro API.
// All store and service errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Persistence errors. Snapshot saves are best-effort: the store logs the
// failure and keeps serving from memory, so this surfaces only when the
// initial load itself is broken.
var (
	ErrPersistence = &AppError{Code: "PERSISTENCE_ERROR", Message: "Failed to access local storage", StatusCode: http.StatusInternalServerError}
)

// Remote AI service errors. The advice path swallows these and falls back;
// the voice path propagates them to the caller.
var (
	ErrRemoteService = &AppError{Code: "REMOTE_SERVICE_ERROR", Message: "The AI service is unavailable", StatusCode: http.StatusBadGateway}
	ErrVoiceCommand  = &AppError{Code: "VOICE_COMMAND_ERROR", Message: "Could not understand the voice command", StatusCode: http.StatusUnprocessableEntity}
)
