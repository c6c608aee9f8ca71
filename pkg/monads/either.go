package monads

import (
	"fmt"
	"reflect"
)

// Either holds a Left value of type L or a Right value of type R. By
// convention Left is the error side. Transformations are right-biased: a
// Left passes through Map and FlatMap untouched.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left panics with ErrNilValue if v is an absent value.
func Left[L, R any](v L) Either[L, R] {
	if IsNil(v) {
		panic(ErrNilValue)
	}
	return Either[L, R]{left: v}
}

// Right panics with ErrNilValue if v is an absent value.
func Right[L, R any](v R) Either[L, R] {
	if IsNil(v) {
		panic(ErrNilValue)
	}
	return Either[L, R]{right: v, isRight: true}
}

// EmptyEither is the canonical empty Either: a Left holding the zero L, or
// ErrEmpty when L is error.
func EmptyEither[L, R any]() Either[L, R] {
	var e Either[L, R]
	if reflect.TypeOf((*L)(nil)).Elem() == reflect.TypeOf((*error)(nil)).Elem() {
		e.left = any(ErrEmpty).(L)
	}
	return e
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) HasValue() bool {
	return e.isRight
}

func (e Either[L, R]) IsEmpty() bool {
	return !e.isRight
}

// Get returns the right value.
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Unit(v R) Either[L, R] {
	return Right[L](v)
}

func (e Either[L, R]) Empty() Either[L, R] {
	return EmptyEither[L, R]()
}

func (e Either[L, R]) Map(f func(R) R) Either[L, R] {
	if !e.isRight {
		return e
	}
	return Right[L](f(e.right))
}

func (e Either[L, R]) FlatMap(f func(R) Either[L, R]) Either[L, R] {
	if !e.isRight {
		return e
	}
	return f(e.right)
}

func (e Either[L, R]) ForEach(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

func (e Either[L, R]) Is(f func(R) bool) bool {
	return e.isRight && f(e.right)
}

func (e Either[L, R]) OrElse(d R) R {
	if e.isRight {
		return e.right
	}
	return d
}

func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// Equal reports whether both are the same side with deep-equal payloads.
func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return DeepEqual(e.right, other.right)
	}
	return DeepEqual(e.left, other.left)
}

// ToOption returns Some for a Right and None for a Left, dropping the left value.
func (e Either[L, R]) ToOption() Option[R] {
	if e.isRight {
		return Maybe(e.right)
	}
	return None[R]()
}

// ToResult returns Success for a Right. A Left becomes a Failure with the
// left value as error, wrapped into a *LeftError when it is not an error.
func (e Either[L, R]) ToResult() Result[R] {
	if e.isRight {
		return Success(e.right)
	}
	return Failure[R](leftError(e.left))
}

// ToDeferred resolves with the right value or rejects with the left one.
func (e Either[L, R]) ToDeferred() *Deferred[R] {
	if e.isRight {
		return Resolved(e.right)
	}
	return Rejected[R](leftError(e.left))
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Either[R, L]{left: e.right}
	}
	return Either[R, L]{right: e.left, isRight: true}
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

func leftError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return &LeftError{Value: v}
}

// MapEither applies f to a right value. The left type is kept.
func MapEither[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if !e.isRight {
		return Either[L, U]{left: e.left}
	}
	return Right[L](f(e.right))
}

func FlatMapEither[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Either[L, U]{left: e.left}
	}
	return f(e.right)
}

// MapLeft applies f to a left value.
func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isRight {
		return Either[U, R]{right: e.right, isRight: true}
	}
	return Left[U, R](f(e.left))
}

func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// JoinEither removes one level of nesting.
func JoinEither[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	return FlatMapEither(e, func(inner Either[L, R]) Either[L, R] { return inner })
}
