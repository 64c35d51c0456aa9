// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"
)

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation    ErrorType = iota // Caller input is missing or malformed (400 Bad Request)
	ErrorTypeNotFound                       // Resource not found (404 Not Found)
	ErrorTypeUnauthorized                   // Session cookie or trigger secret missing/mismatched (401 Unauthorized)
	ErrorTypeConfiguration                  // Required secret or credential is not configured (500, generic message)
	ErrorTypeUpstreamAuth                   // Provider rejected the credential exchange (502, generic message)
	ErrorTypeUpstream                       // Provider or CRM rejected a call (502, generic message)
	ErrorTypeInternal                       // Anything else (500 Internal Server Error)
)

// String returns the name used in logs and error payloads.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeUnauthorized:
		return "unauthorized"
	case ErrorTypeConfiguration:
		return "configuration"
	case ErrorTypeUpstreamAuth:
		return "upstream_auth"
	case ErrorTypeUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Sentinel errors
var (
	// ErrServiceUnavailable is returned by readiness checks before the service is wired.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrUnauthorized is the user-facing message for failed session or trigger checks.
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError represents an error with semantic type information
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// UpstreamError describes a non-success response from an external provider.
// Operation names the call that failed (e.g. "create_meeting"); StatusText
// is the provider's message or the HTTP status text.
type UpstreamError struct {
	Operation  string
	StatusCode int
	StatusText string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed with status %d: %s", e.Operation, e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.StatusText)
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return ErrorTypeUpstream
	}
	return ErrorTypeInternal // default fallback
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

func NewUnauthorizedError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnauthorized, Message: message, Err: errors.Join(err...)}
}

func NewConfigurationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeConfiguration, Message: message, Err: errors.Join(err...)}
}

func NewUpstreamAuthError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUpstreamAuth, Message: message, Err: errors.Join(err...)}
}

// NewUpstreamError wraps an UpstreamError so callers can match on either the
// DomainError type or the UpstreamError details.
func NewUpstreamError(operation string, statusCode int, statusText string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeUpstream,
		Message: "upstream call failed",
		Err:     &UpstreamError{Operation: operation, StatusCode: statusCode, StatusText: statusText},
	}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}
