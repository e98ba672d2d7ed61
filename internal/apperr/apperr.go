// Package apperr classifies failures into the kinds the transport layer maps to responses.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindConflict
	KindMismatch
	KindInvalid
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindMismatch:
		return "mismatch"
	case KindInvalid:
		return "invalid"
	case KindStorageFailure:
		return "storage_failure"
	default:
		return "unexpected"
	}
}

// Error pairs a Kind with a message key and template data for localized presentation.
type Error struct {
	Kind Kind
	Key  string
	Data map[string]any
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Key
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, key string, err error) *Error {
	return &Error{Kind: kind, Key: key, Err: err}
}

func (e *Error) With(data map[string]any) *Error {
	e.Data = data
	return e
}

func NotFound(key string, err error) *Error {
	return New(KindNotFound, key, err)
}

func Conflict(key string, err error) *Error {
	return New(KindConflict, key, err)
}

func Mismatch(key string, err error) *Error {
	return New(KindMismatch, key, err)
}

func Invalid(key string, err error) *Error {
	return New(KindInvalid, key, err)
}

func StorageFailure(key string, err error) *Error {
	return New(KindStorageFailure, key, err)
}

// KindOf reports the kind of the first *Error in err's chain, or KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
