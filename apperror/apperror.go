package apperror

import (
	"errors"
	"net/http"
)

// Error kinds. Every failure returned by the catalog, orders and payment
// layers matches exactly one of these with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Error is a classified failure with a client-facing message.
type Error struct {
	Kind    error
	Message string
	// Field names the offending input for validation and duplicate errors.
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Kind.Error() + ": " + e.Err.Error()
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func InvalidField(field, msg string) error {
	return &Error{Kind: ErrValidation, Message: msg, Field: field}
}

func Duplicate(field, msg string) error {
	return &Error{Kind: ErrDuplicateKey, Message: msg, Field: field}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

// Unavailable wraps an infrastructure failure of the relational or object store.
func Unavailable(msg string, err error) error {
	return &Error{Kind: ErrStoreUnavailable, Message: msg, Err: err}
}

// FieldOf returns the offending field recorded on err, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Message returns the text safe to show a client. Store failures never
// leak their cause.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Server error"
	}
	if errors.Is(e.Kind, ErrStoreUnavailable) {
		if e.Message != "" {
			return e.Message
		}
		return "Database error"
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// HTTPStatus maps an error kind onto a response code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
