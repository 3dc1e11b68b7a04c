package domain

import (
	"errors"
	"fmt"
)

// ErrorType is a machine-readable classification for result errors.
type ErrorType string

const (
	ErrorTypeValidation        ErrorType = "validation_error"
	ErrorTypeUnsupportedValue  ErrorType = "unsupported_value"
	ErrorTypeTransport         ErrorType = "transport_error"
	ErrorTypeMalformedResponse ErrorType = "malformed_response"
)

// ValidationError represents bad or missing caller input. It is recovered
// into a structured result error, never surfaced as a crash.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewMissingFieldError creates a validation error for a required field that
// was absent or empty.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field is missing"}
}

// UnsupportedValueError is a validation error for a token outside the closed
// enumeration set of its kind (currency, connector, method).
type UnsupportedValueError struct {
	Kind  string
	Token string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Token)
}

// NewUnsupportedValueError creates a new unsupported-value error.
func NewUnsupportedValueError(kind, token string) *UnsupportedValueError {
	return &UnsupportedValueError{Kind: kind, Token: token}
}

// TransportError wraps a remote-call failure (unreachable endpoint, deadline,
// malformed frame). It is distinct from a domain decline, which is expressed
// through the normalized status instead.
type TransportError struct {
	Code   string
	Detail string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %s", e.Code, e.Detail)
}

// NewTransportError creates a new transport error.
func NewTransportError(code, detail string) *TransportError {
	return &TransportError{Code: code, Detail: detail}
}

// MalformedResponseError signals a response whose shape is inconsistent with
// the operation that produced it. Missing optional substructures never raise
// this; a nil or wrong-operation response does.
type MalformedResponseError struct {
	Operation string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response for operation %q", e.Operation)
}

// NewMalformedResponseError creates a new malformed-response error.
func NewMalformedResponseError(operation string) *MalformedResponseError {
	return &MalformedResponseError{Operation: operation}
}

// ClassifyError maps an error from the core to its result error type.
func ClassifyError(err error) ErrorType {
	var (
		unsupportedErr *UnsupportedValueError
		validationErr  *ValidationError
		transportErr   *TransportError
		malformedErr   *MalformedResponseError
	)
	switch {
	case errors.As(err, &unsupportedErr):
		return ErrorTypeUnsupportedValue
	case errors.As(err, &validationErr):
		return ErrorTypeValidation
	case errors.As(err, &transportErr):
		return ErrorTypeTransport
	case errors.As(err, &malformedErr):
		return ErrorTypeMalformedResponse
	default:
		return ErrorTypeTransport
	}
}
