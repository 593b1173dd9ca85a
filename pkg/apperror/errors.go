package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Message is safe to return to clients; Err carries internal detail
// for server-side logging only.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Remote node (FONE) ----

// ErrFoneNotConfigured signals that the node URL or API key is absent.
// Surfaced at proxy-call time, never at startup.
func ErrFoneNotConfigured() *AppError {
	return New("FONE_001", "Fone node is not configured", http.StatusInternalServerError)
}

// ErrRemoteCall carries a message derived from the remote response.
// The message must never contain the node URL or the API key.
func ErrRemoteCall(message string) *AppError {
	return New("FONE_002", message, http.StatusInternalServerError)
}

// ---- Validation (VAL) ----

// Validation returns a field-specific 400 error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// ErrDatabaseError hides the underlying database failure behind a
// generic message; the wrapped error is for logs only.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "DB error", http.StatusInternalServerError, err)
}

// ErrDatabaseNotConfigured signals that no database URL was provided.
func ErrDatabaseNotConfigured() *AppError {
	return New("SYS_002", "DB error", http.StatusInternalServerError)
}

// InternalError wraps any other internal failure.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}
