package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping
type Kind string

const (
	ValidationFailed Kind = "ValidationFailed"
	NotFound         Kind = "NotFound"
	DepthExceeded    Kind = "DepthExceeded"
	SelfReference    Kind = "SelfReference"
	HasChildren      Kind = "HasChildren"
	Unauthorized     Kind = "Unauthorized"
	Forbidden        Kind = "Forbidden"
	StoreFailure     Kind = "StoreFailure"
)

// HTTPStatus maps the kind to its response status
func (k Kind) HTTPStatus() int {
	switch k {
	case ValidationFailed, DepthExceeded, SelfReference, HasChildren:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the structured error returned by services
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	IDs     []string
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

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Store wraps a persistence error, keeping the store's message visible
func Store(err error) *Error {
	return &Error{Kind: StoreFailure, Message: err.Error(), Err: err}
}

// Validation creates a ValidationFailed error with field details
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

// WithIDs records the offending identifiers
func (e *Error) WithIDs(ids ...string) *Error {
	e.IDs = append(e.IDs, ids...)
	return e
}

// KindOf returns the kind of err, or StoreFailure for unclassified errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return StoreFailure
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
