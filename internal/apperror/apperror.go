// Package apperror defines errors that carry the HTTP status they map to.
package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies an Error.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindInvalidRange    Kind = "invalid_range"
	KindUserNotFound    Kind = "user_not_found"
	KindDuplicateUser   Kind = "duplicate_user"
	KindArchiveNotFound Kind = "archive_not_found"
	KindArchiveDisabled Kind = "archive_disabled"
)

// Error is a client-facing error with a status code and message. Subject
// names the user id or archive key the error is about; it is logged but
// never sent to the client.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Subject string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors of the same kind so that errors.Is works against the
// values returned by the constructors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func NewErrValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: http.StatusBadRequest, Message: msg}
}

func NewErrRequiredFields() *Error {
	return NewErrValidation("All fields are required")
}

func NewErrInvalidRange(year, month string) *Error {
	return &Error{
		Kind:    KindInvalidRange,
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid year or month: year=%q month=%q", year, month),
	}
}

func NewErrUserNotFound(id string) *Error {
	return &Error{Kind: KindUserNotFound, Code: http.StatusNotFound, Message: "User not found", Subject: id}
}

func NewErrUserAlreadyExists(id string) *Error {
	return &Error{Kind: KindDuplicateUser, Code: http.StatusBadRequest, Message: "User already exists", Subject: id}
}

func NewErrArchiveNotFound(key string) *Error {
	return &Error{Kind: KindArchiveNotFound, Code: http.StatusNotFound, Message: "Archive not found", Subject: key}
}

func NewErrArchiveDisabled() *Error {
	return &Error{Kind: KindArchiveDisabled, Code: http.StatusServiceUnavailable, Message: "Report archive is not configured"}
}
