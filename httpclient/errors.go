package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeCanceled indicates the caller's context was canceled.
	ErrCodeCanceled
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates a client-side validation error (400).
	ErrCodeValidation
	// ErrCodeDecode indicates the response body could not be decoded into
	// the requested type.
	ErrCodeDecode
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// TargetType names the type a decode was attempted into (decode errors).
	TargetType string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewCanceledError creates a cancellation error. Distinguishable from both
// transport failures and decode failures via IsCanceled.
func NewCanceledError(err error) *Error {
	return &Error{Code: ErrCodeCanceled, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) *Error {
	return &Error{Code: ErrCodeValidation, Message: msg}
}

// NewDecodeError creates a decode error. The message carries the target
// type name and the raw body so the failure is diagnosable from logs alone.
func NewDecodeError(targetType string, body []byte, err error) *Error {
	return &Error{
		Code:       ErrCodeDecode,
		Message:    fmt.Sprintf("cannot decode response into %s: %v: body %q", targetType, err, body),
		Body:       body,
		TargetType: targetType,
		Err:        err,
	}
}

// NewServerError creates a server error.
func NewServerError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeServer,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401 || statusCode == 403:
		return &Error{StatusCode: statusCode, Code: ErrCodeAuth, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	case statusCode == 404:
		return &Error{StatusCode: statusCode, Code: ErrCodeNotFound, Message: "HTTP 404", Body: body}
	case statusCode == 429:
		return &Error{StatusCode: statusCode, Code: ErrCodeRateLimit, Message: "HTTP 429", Body: body}
	case statusCode >= 400 && statusCode < 500:
		return &Error{StatusCode: statusCode, Code: ErrCodeValidation, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	default:
		return &Error{StatusCode: statusCode, Code: ErrCodeServer, Message: fmt.Sprintf("HTTP %d", statusCode), Body: body}
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsCanceled checks if an error is a cancellation error.
func IsCanceled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCanceled
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRateLimit
}

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeServer
}
