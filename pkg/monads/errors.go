package monads

import (
	"errors"
	"fmt"
)

var (
	// ErrNone is the error a None reports when it is converted to an Either,
	// a Result or a Deferred without an explicit error.
	ErrNone = errors.New("nothing")
	// ErrEmpty is carried by the canonical empty Result.
	ErrEmpty = errors.New("empty result")
	// ErrNilValue is the panic value of Some, Left and Right when given an
	// absent value.
	ErrNilValue = errors.New("value must not be nil")
	// ErrNilError replaces a nil error passed to Failure.
	ErrNilError = errors.New("failure without error")
	// ErrNilCollection is returned when a nil slice of containers is flattened.
	ErrNilCollection = errors.New("collection is nil")
)

// PanicError wraps a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// LeftError carries a left payload that is not an error through a rejected
// Deferred.
type LeftError struct {
	Value any
}

func (e *LeftError) Error() string {
	return fmt.Sprintf("left: %v", e.Value)
}

// TypeMismatchError is reported by FromErrorOrValue when the given value is
// neither an error nor of the requested type.
type TypeMismatchError struct {
	Want string
	Got  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value %v (%T) is neither an error nor a %s", e.Got, e.Got, e.Want)
}
