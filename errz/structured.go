// Package errz defines the error kinds raised by gizmo objects and
// constructor definitions.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// SelfDelegation indicates an object was added as its own delegate.
	SelfDelegation ErrorKind = iota + 1
	// DuplicateDelegate indicates the delegate is already a direct delegate.
	DuplicateDelegate
	// Cycle indicates the delegate already reaches the object, so adding it
	// would close a cycle in the delegate graph.
	Cycle
	// UnsupportedRuntime is retained for completeness. Nothing in this
	// module returns it.
	UnsupportedRuntime
	// InvalidDefinition indicates a constructor definition was composed from
	// missing parts.
	InvalidDefinition
	// InvalidDelegate indicates a nil delegate was supplied.
	InvalidDelegate
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case SelfDelegation:
		return "self delegation error"
	case DuplicateDelegate:
		return "duplicate delegate error"
	case Cycle:
		return "cycle error"
	case UnsupportedRuntime:
		return "unsupported runtime error"
	case InvalidDefinition:
		return "invalid definition error"
	case InvalidDelegate:
		return "invalid delegate error"
	default:
		return "error"
	}
}

// Sentinels for use with errors.Is. Any *Error of the same kind matches.
var (
	ErrSelfDelegation     = &Error{Kind: SelfDelegation}
	ErrDuplicateDelegate  = &Error{Kind: DuplicateDelegate}
	ErrCycle              = &Error{Kind: Cycle}
	ErrUnsupportedRuntime = &Error{Kind: UnsupportedRuntime}
	ErrInvalidDefinition  = &Error{Kind: InvalidDefinition}
	ErrInvalidDelegate    = &Error{Kind: InvalidDelegate}
)

// Error is a categorized error with an optional cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates a new Error with the given kind and message.
func New(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
