// Package apperrors defines the application error taxonomy shared by the
// service, repository and handler layers.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport-level mapping.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindPersistence   Kind = "persistence"
	KindMissingTenant Kind = "missing_tenant"
)

// Error carries a stable kind, a human-readable message and an optional cause.
// The cause is preserved for logging but never rendered to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: cause}
}

func MissingTenant() *Error {
	return &Error{Kind: KindMissingTenant, Message: "tenant identifier is required"}
}

// KindOf extracts the kind of err, or KindPersistence when err is not an
// application error. Storage drivers and other collaborators return plain
// errors; treating them as persistence faults keeps the 5xx mapping honest.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// MessageOf returns the user-facing message of err. Non-application errors get
// a generic message so storage internals never leak to callers.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
