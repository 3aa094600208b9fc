package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewNotFound builds a 404 whose message reads "<Resource> not found".
func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return internalError(err)
}

func internalError(err error) *DomainError {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromStatus wraps a transport-level status (for example a router 404) as a DomainError.
func FromStatus(status int, message string) *DomainError {
	code := "INTERNAL_ERROR"
	switch {
	case status == http.StatusNotFound:
		code = "NOT_FOUND"
	case status == http.StatusMethodNotAllowed:
		code = "METHOD_NOT_ALLOWED"
	case status == http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case status == http.StatusForbidden:
		code = "FORBIDDEN"
	case status == http.StatusRequestTimeout:
		code = "TIMEOUT"
	case status >= 400 && status < 500:
		code = "BAD_REQUEST"
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return NewDomainError(code, message, status, nil)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return internalError(err)
}

// MapError converts generic errors to DomainError. A nil error stays nil.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}

// PublicMessage returns the message safe to show a client. Internal failures
// carry their cause only when expose is set.
func (e *DomainError) PublicMessage(expose bool) string {
	if e.HTTPStatus >= http.StatusInternalServerError && expose && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}
