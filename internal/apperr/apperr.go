package apperr

import (
	"errors"
	"fmt"
)

// Kind distinguishes the failure categories the engine can raise so that
// callers (HTTP handlers, jobs) can map them without parsing messages.
type Kind int

const (
	// KindNotFound: an attempt, test, question or mastery record did not resolve.
	KindNotFound Kind = iota + 1
	// KindInvalidState: the operation is not legal for the record's current
	// lifecycle state (completed attempt, duplicate answer, bad bulk set).
	KindInvalidState
	// KindDataIntegrity: corrupt authoring data (e.g. a gradable question with
	// zero correct options). A server-side fault, never a user error.
	KindDataIntegrity
)

type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, msg: fmt.Sprintf(format, args...)}
}

func DataIntegrityf(format string, args ...interface{}) error {
	return &Error{Kind: KindDataIntegrity, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error while keeping it unwrappable.
func Wrap(kind Kind, err error, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf returns the kind carried by err, or 0 when err has none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsInvalidState(err error) bool  { return KindOf(err) == KindInvalidState }
func IsDataIntegrity(err error) bool { return KindOf(err) == KindDataIntegrity }
