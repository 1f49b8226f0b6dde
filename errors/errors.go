package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all extensions.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	// ErrMsg is a transaction message that cannot be handled.
	ErrMsg = Register(4, "invalid message")
	// ErrModel is an entity that cannot be stored or decoded.
	ErrModel     = Register(5, "invalid model")
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman marks a code path that is unreachable in correct code.
	ErrHuman    = Register(7, "coding error")
	ErrEmpty    = Register(9, "value is empty")
	ErrState    = Register(10, "invalid state")
	ErrType     = Register(11, "invalid type")
	ErrAmount   = Register(13, "invalid amount")
	ErrInput    = Register(14, "invalid input")
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")
	ErrDatabase = Register(17, "database")
	// ErrIteratorDone is returned by Next of an exhausted iterator.
	ErrIteratorDone = Register(18, "iterator done")
	// ErrPanic is a recovered panic. Its message is never sent to clients.
	ErrPanic = Register(111222, "panic")
)

// registry maps the used codes to their errors. Code 1 is reserved for
// unregistered errors.
var registry = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register declares a root error. It panics when the code is taken, so
// it must only be called from package level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d already registered as %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a root error. Every error returned to a client wraps one.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode is the code sent to the client.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is reports whether err is e or wraps it. A nil e matches only nil
// errors, including typed nil pointers.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	return walk(err, func(cur error) bool { return cur == e })
}

// Wrap adds a description to err. A stack trace is recorded by the first
// wrap only. Wrapping nil gives nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// deferred:
//
//   defer errors.Recover(&err)
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type unpacker interface {
	Unpack() []error
}

// walk calls visit for err and every error it wraps, depth first, until
// visit returns true. Clubbed errors are visited one after another.
func walk(err error, visit func(error) bool) bool {
	for err != nil {
		if visit(err) {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				if walk(e, visit) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// stackTrace returns the first stack trace recorded in the err chain.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	walk(err, func(cur error) bool {
		t, ok := cur.(interface{ StackTrace() errors.StackTrace })
		if ok {
			st = t.StackTrace()
		}
		return ok
	})
	return st
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
