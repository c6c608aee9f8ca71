package monads

import (
	"context"
	stderrors "errors"
	"reflect"

	"github.com/pkg/errors"
)

// IsNil reports whether i is an absent value: a nil interface or a nil
// pointer, map, slice, channel, func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// asError turns a recovered panic value into an error. Errors are kept as
// they are, anything else is wrapped into a PanicError with a stack trace.
func asError(r any) error {
	if err, ok := r.(error); ok && !IsNil(err) {
		return err
	}
	return errors.WithStack(&PanicError{Value: r})
}

// IsCancellationError reports whether err comes from a cancelled or expired
// context.
func IsCancellationError(err error) bool {
	return stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled)
}
