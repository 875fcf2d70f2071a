package types

import "fmt"

// ErrorCode represents a unified error code across the planner.
type ErrorCode string

// Request and validation error codes
const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrInvalidVibe    ErrorCode = "INVALID_VIBE"
	ErrInvalidDate    ErrorCode = "INVALID_DATE"
)

// Stage execution error codes
const (
	ErrTimeout       ErrorCode = "TIMEOUT"
	ErrAgentNotReady ErrorCode = "AGENT_NOT_READY"
	ErrAgentFailed   ErrorCode = "AGENT_FAILED"
)

// Upstream collaborator error codes
const (
	ErrUpstreamError   ErrorCode = "UPSTREAM_ERROR"
	ErrUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
	ErrRateLimited     ErrorCode = "RATE_LIMITED"
	ErrUnresolvable    ErrorCode = "UNRESOLVABLE_PLACE"
	ErrInternalError   ErrorCode = "INTERNAL_ERROR"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Retryable  bool      `json:"retryable"`
	Stage      string    `json:"stage,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithHTTPStatus sets the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// WithRetryable marks the error as retryable.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// WithStage records which planning stage produced the error.
func (e *Error) WithStage(stage string) *Error {
	e.Stage = stage
	return e
}

// IsValidation reports whether an error is a request-validation error.
// Validation errors abort the request before any stage runs; everything else
// is contained at the stage boundary.
func IsValidation(err error) bool {
	if e, ok := err.(*Error); ok {
		switch e.Code {
		case ErrInvalidRequest, ErrInvalidVibe, ErrInvalidDate:
			return true
		}
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}
