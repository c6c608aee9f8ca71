package monads

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a computation: a Success holding a value or a
// Failure holding an error. Every Result carries an id and a creation time;
// neither takes part in equality.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	succeeded bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps err. A nil err is replaced by ErrNilError.
func Failure[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilError
	}
	return Result[T]{
		err:       err,
		succeeded: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries the failure of from over to a Result of another type,
// keeping its error, id and creation time.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		succeeded: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func FromValue[T any](v T) Result[T] {
	return Success(v)
}

func FromError[T any](err error) Result[T] {
	return Failure[T](err)
}

// FromPair converts a (value, error) pair into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// FromErrorOrValue returns a Failure if x is an error and a Success if x is
// a T. Anything else becomes a Failure with a *TypeMismatchError.
func FromErrorOrValue[T any](x any) Result[T] {
	if err, ok := x.(error); ok {
		return Failure[T](err)
	}
	if v, ok := x.(T); ok {
		return Success(v)
	}
	if x == nil {
		var zero T
		return Success(zero)
	}
	return Failure[T](&TypeMismatchError{Want: reflect.TypeOf((*T)(nil)).Elem().String(), Got: x})
}

// Attempt calls f and returns its value as a Success. A panic inside f is
// recovered and returned as a Failure: an error panic value is kept as it
// is, any other value is wrapped into a *PanicError.
func Attempt[T any](f func() T) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			err := asError(p)
			log.WithError(err).Debug("attempt: recovered panic")
			res = Failure[T](err)
		}
	}()

	return Success(f())
}

// AttemptErr calls f and converts a returned error, or a panic, into a Failure.
func AttemptErr[T any](f func() (T, error)) Result[T] {
	return JoinResult(Attempt(func() Result[T] {
		return FromPair(f())
	}))
}

// EmptyResult is the canonical empty Result.
func EmptyResult[T any]() Result[T] {
	return Failure[T](ErrEmpty)
}

func (r Result[T]) HasValue() bool {
	return r.succeeded
}

func (r Result[T]) Succeeded() bool {
	return r.succeeded
}

func (r Result[T]) IsEmpty() bool {
	return !r.succeeded
}

// Value returns the value of a Success and the zero value otherwise.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Get() (T, bool) {
	return r.value, r.succeeded
}

// Err returns the error of a Failure and nil for a Success. The zero Result
// reports ErrEmpty.
func (r Result[T]) Err() error {
	if r.succeeded {
		return nil
	}
	if r.err == nil {
		return ErrEmpty
	}
	return r.err
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Unit(v T) Result[T] {
	return Success(v)
}

func (r Result[T]) Empty() Result[T] {
	return EmptyResult[T]()
}

// OnSuccess calls f with the value of a Success and returns r unchanged.
func (r Result[T]) OnSuccess(f func(T)) Result[T] {
	if r.succeeded {
		f(r.value)
	}
	return r
}

// OnFailure calls f with the error of a Failure and returns r unchanged.
func (r Result[T]) OnFailure(f func(error)) Result[T] {
	if !r.succeeded {
		f(r.Err())
	}
	return r
}

// Map applies f to the value of a Success through Attempt, so a panicking f
// yields a Failure.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.succeeded {
		return r
	}
	return Attempt(func() T { return f(r.value) })
}

func (r Result[T]) FlatMap(f func(T) Result[T]) Result[T] {
	if !r.succeeded {
		return r
	}
	return f(r.value)
}

func (r Result[T]) ForEach(f func(T)) {
	if r.succeeded {
		f(r.value)
	}
}

func (r Result[T]) Is(f func(T) bool) bool {
	return r.succeeded && f(r.value)
}

func (r Result[T]) OrElse(d T) T {
	if r.succeeded {
		return r.value
	}
	return d
}

func (r Result[T]) Match(onSuccess func(T), onFailure func(error)) {
	if r.succeeded {
		onSuccess(r.value)
	} else {
		onFailure(r.Err())
	}
}

// Equal reports whether both results are the same variant with deep-equal
// payloads. Errors are compared structurally, so a wrapped error is not
// equal to the error it wraps.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.succeeded != other.succeeded {
		return false
	}
	if r.succeeded {
		return DeepEqual(r.value, other.value)
	}
	a, b := r.Err(), other.Err()
	return DeepEqual(a, b)
}

// ToOption returns Maybe(value) for a Success and None for a Failure.
func (r Result[T]) ToOption() Option[T] {
	if r.succeeded {
		return Maybe(r.value)
	}
	return None[T]()
}

// ToEither returns Right for a Success and Left(err) for a Failure. A
// Success holding an absent value becomes Left(ErrNilValue).
func (r Result[T]) ToEither() Either[error, T] {
	if !r.succeeded {
		return Left[error, T](r.Err())
	}
	if IsNil(r.value) {
		return Left[error, T](ErrNilValue)
	}
	return Right[error](r.value)
}

func (r Result[T]) ToDeferred() *Deferred[T] {
	if r.succeeded {
		return Resolved(r.value)
	}
	return Rejected[T](r.Err())
}

func (r Result[T]) String() string {
	if r.succeeded {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.Err())
}

// MapResult applies f to the value of a Success through Attempt.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.succeeded {
		return FailureFrom[T, U](r)
	}
	return Attempt(func() U { return f(r.value) })
}

func FlatMapResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.succeeded {
		return FailureFrom[T, U](r)
	}
	return f(r.value)
}

func MatchResult[T, U any](r Result[T], onSuccess func(T) U, onFailure func(error) U) U {
	if r.succeeded {
		return onSuccess(r.value)
	}
	return onFailure(r.Err())
}

// JoinResult removes one level of nesting.
func JoinResult[T any](r Result[Result[T]]) Result[T] {
	return FlatMapResult(r, func(inner Result[T]) Result[T] { return inner })
}
