// Package apperr holds the failure taxonomy shared by every domain service.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories a service may report.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal_failure"
	}
}

// Error codes carried in the response envelope.
const (
	CodeNotFound = "NOT_FOUND"
	CodeConflict = "CONFLICT"
	CodeInternal = "INTERNAL_FAILURE"
)

// Error is a categorised service failure. ID and Slug identify the resource
// involved when known (the missing id for NotFound, the owner for Conflict).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	ID      int64
	Slug    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing resource.
func NotFound(id int64, message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message, ID: id}
}

// Conflict reports a slug already owned by the resource with id.
func Conflict(id int64, slug, message string) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Message: message, ID: id, Slug: slug}
}

// Internal wraps an unexpected failure. The message is safe to show to clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Anything else
// counts as an internal failure.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
