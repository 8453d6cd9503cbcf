package apperror

import "net/http"

// AppError carries an HTTP status code alongside the message that is
// safe to put on the wire. Err holds the underlying cause for logging
// and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// Config reports a missing or unusable server configuration value.
func Config(message string) *AppError {
	return New(http.StatusInternalServerError, message, nil)
}

// Database wraps a store failure. The detail string is what callers see;
// the wrapped error keeps the full cause for the logs.
func Database(detail string, err error) *AppError {
	return New(http.StatusInternalServerError, "Database Error: "+detail, err)
}
