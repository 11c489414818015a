// Package dto defines the OpenRouter wire payloads and error types.
package dto

import (
	"fmt"
	"time"
)

// ErrorType categorizes failures by cause.
type ErrorType string

const (
	// ErrorTypeInvalidInput indicates a locally rejected argument, detected
	// before any network call.
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	// ErrorTypeAuthentication indicates rejected credentials (HTTP 401).
	ErrorTypeAuthentication ErrorType = "authentication"
	// ErrorTypeAuthorization indicates a forbidden operation (HTTP 403).
	ErrorTypeAuthorization ErrorType = "authorization"
	// ErrorTypeRateLimit indicates a throttled request (HTTP 429).
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeValidation indicates the remote rejected the request body (HTTP 400).
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeProvider indicates an upstream model provider failure (HTTP 5xx).
	ErrorTypeProvider ErrorType = "provider"
	// ErrorTypeNetwork indicates a transport-level failure before any HTTP response.
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeSerialization indicates a response body that did not match the expected shape.
	ErrorTypeSerialization ErrorType = "serialization"
	// ErrorTypeStreaming indicates a malformed or truncated chunk mid-stream.
	ErrorTypeStreaming ErrorType = "streaming"
	// ErrorTypeTimeout indicates an exceeded time budget.
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeAPI is the fallback for remote errors whose body could not be parsed.
	ErrorTypeAPI ErrorType = "api"
)

// Error represents a unified error structure across all SDK operations.
type Error struct {
	Type       ErrorType     // Failure category
	Message    string        // Human-readable description
	StatusCode int           // HTTP status, when a response was received
	Code       string        // Remote-provided error code, when present
	Provider   string        // Upstream provider name, when the remote reports it
	RetryAfter time.Duration // Throttle hint from a 429 response
	Err        error         // Wrapped cause
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("openrouter: %s error: %s", e.Type, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s (code=%s)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new typed error with the specified type, message, and underlying cause.
func NewError(errType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// ErrorEnvelope is the structured error body returned by the OpenRouter API.
type ErrorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the remote error fields.
type ErrorDetail struct {
	Code     int                    `json:"code"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
