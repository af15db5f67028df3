// Package errors implements a Kind-tagged error type, adapted from
// grailbio-base's errors package: errors carry an interpretable Kind
// so callers can decide things like "was this I/O, or did a
// precondition fail" without string matching, and can chain an
// underlying cause. The gob-serialisation and verror-interop parts of
// the teacher's version don't apply here (results never cross a
// process boundary as errors), so this keeps only the
// construct-classify-chain core.
package errors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Kind classifies an error for programmatic handling.
type Kind int

const (
	// Other is an unclassified error.
	Other Kind = iota
	// IO indicates a filesystem or stream read/write failure.
	IO
	// NotExist indicates a missing corpus file or cache entry.
	NotExist
	// Invalid indicates a malformed sample, config value, or flag.
	Invalid
	// Precondition indicates a violated internal invariant (a bug, not
	// a recoverable condition).
	Precondition
	// Canceled indicates a context cancellation.
	Canceled
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io"
	case NotExist:
		return "not exist"
	case Invalid:
		return "invalid"
	case Precondition:
		return "precondition"
	case Canceled:
		return "canceled"
	default:
		return "other"
	}
}

// Error is a Kind-tagged, optionally chained error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// E constructs an Error from its arguments: a Kind sets the kind, a
// string appends to the message (space-joined across multiple
// strings), and an error sets the cause. When no Kind is given but a
// cause is, E classifies the cause using os.IsNotExist and context
// cancellation, same as the teacher's convention.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.E: no args")
	}
	e := &Error{}
	var msg strings.Builder
	for _, arg := range args {
		switch a := arg.(type) {
		case Kind:
			e.Kind = a
		case string:
			if msg.Len() > 0 {
				msg.WriteString(" ")
			}
			msg.WriteString(a)
		case error:
			e.Err = a
		default:
			return &Error{Kind: Invalid, Message: fmt.Sprintf("errors.E: unknown argument type %T", arg)}
		}
	}
	e.Message = msg.String()
	if e.Kind == Other && e.Err != nil {
		switch {
		case os.IsNotExist(e.Err):
			e.Kind = NotExist
		case errors.Is(e.Err, context.Canceled):
			e.Kind = Canceled
		}
	}
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != Other {
		b.WriteString(e.Kind.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		if e.Message != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether err is (or wraps) an *Error of the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
