package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP layer. Services return *Error so
// handlers can map a kind to a status code without string matching.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindForbidden
	KindNotFound
	KindConflict
	KindResolution
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Resolution(format string, args ...any) *Error {
	return &Error{Kind: KindResolution, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
