package monads

import "fmt"

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v. It panics with ErrNilValue if v is an absent value;
// use Maybe when v may be nil.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		panic(ErrNilValue)
	}
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Maybe returns None for an absent value and Some(v) otherwise.
func Maybe[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, ok: true}
}

// FromPtr returns None for a nil pointer and Some of the pointed-to value otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Maybe(*p)
}

// EmptyOption is the canonical empty Option.
func EmptyOption[T any]() Option[T] {
	return None[T]()
}

func (o Option[T]) HasValue() bool {
	return o.ok
}

func (o Option[T]) IsEmpty() bool {
	return !o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unit builds a new Option of the same family from a bare value.
func (o Option[T]) Unit(v T) Option[T] {
	return Maybe(v)
}

func (o Option[T]) Empty() Option[T] {
	return None[T]()
}

// Map applies f to the value of a Some and wraps the outcome with Some.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.ok {
		return o
	}
	return Some(f(o.value))
}

// FlatMap returns f(value) for a Some and None otherwise.
func (o Option[T]) FlatMap(f func(T) Option[T]) Option[T] {
	if !o.ok {
		return o
	}
	return f(o.value)
}

// Or returns o if it holds a value and fallback otherwise.
func (o Option[T]) Or(fallback Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fallback
}

// OrElse returns the value or d.
func (o Option[T]) OrElse(d T) T {
	if o.ok {
		return o.value
	}
	return d
}

// OrElseGet returns the value or the result of f.
func (o Option[T]) OrElseGet(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// OrNil returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) OrNil() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Is(f func(T) bool) bool {
	return o.ok && f(o.value)
}

// Filter keeps the value only if f holds for it.
func (o Option[T]) Filter(f func(T) bool) Option[T] {
	if o.Is(f) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.ok {
		onSome(o.value)
	} else {
		onNone()
	}
}

func (o Option[T]) ForEach(f func(T)) {
	if o.ok {
		f(o.value)
	}
}

// Equal reports whether both options are None, or both are Some with deep-equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || DeepEqual(o.value, other.value)
}

// ToEither converts Some(v) to Right(v) and None to Left(err).
// A nil err is replaced by ErrNone.
func (o Option[T]) ToEither(err error) Either[error, T] {
	if o.ok {
		return Right[error](o.value)
	}
	if IsNil(err) {
		err = ErrNone
	}
	return Left[error, T](err)
}

// ToResult converts Some(v) to Success(v) and None to Failure(err).
// A nil err is replaced by ErrNone.
func (o Option[T]) ToResult(err error) Result[T] {
	if o.ok {
		return Success(o.value)
	}
	if err == nil {
		err = ErrNone
	}
	return Failure[T](err)
}

// ToDeferred returns a Deferred already resolved with the value, or
// rejected with ErrNone.
func (o Option[T]) ToDeferred() *Deferred[T] {
	if o.ok {
		return Resolved(o.value)
	}
	return Rejected[T](ErrNone)
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies f to the value of a Some and wraps the outcome with Some.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMapOption returns f(value) for a Some and None otherwise.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// MatchOption returns onSome(value) for a Some and onNone() otherwise.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// JoinOption removes one level of nesting.
func JoinOption[T any](o Option[Option[T]]) Option[T] {
	return FlatMapOption(o, func(inner Option[T]) Option[T] { return inner })
}

func OrOption[T any](o, fallback Option[T]) Option[T] {
	return o.Or(fallback)
}

func OrElseOption[T any](o Option[T], d T) T {
	return o.OrElse(d)
}

func OrNilOption[T any](o Option[T]) *T {
	return o.OrNil()
}
