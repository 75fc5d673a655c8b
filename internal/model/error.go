// internal/model/error.go
package model

import "errors"

// Application errors. Handlers map them to HTTP status codes.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServer      = errors.New("internal server error")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// AppError carries the client-facing message for an error.
type AppError struct {
	Code    string // machine-readable code, used in logs
	Message string // goes to the "error" field of the response
	Err     error
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// APIErrorResponse is the JSON body of every error response.
type APIErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is returned by delete endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse is returned by maintenance endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}
