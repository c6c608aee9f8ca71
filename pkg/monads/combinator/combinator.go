package combinator

import (
	"github.com/ib-77/monads/pkg/monads"
)

var ErrNilCollection = monads.ErrNilCollection

// Flatten turns ms into one container holding the values of ms in order.
// The fold stops at the first empty element and returns the empty container
// it maps to. An empty ms yields fam.Empty(), a nil ms yields ErrNilCollection.
func Flatten[T, M, S any](fam Family[T, M, S], ms []M) (S, error) {
	if ms == nil {
		var zero S
		return zero, ErrNilCollection
	}

	if len(ms) == 0 {
		if fam.Empty == nil {
			var zero S
			return zero, nil
		}
		return fam.Empty(), nil
	}

	var rec func(rest []M, acc []T) S
	rec = func(rest []M, acc []T) S {
		if len(rest) == 0 {
			return fam.Unit(acc)
		}
		return fam.Bind(rest[0], func(v T) S {
			return rec(rest[1:], append(acc, v))
		})
	}

	return rec(ms, make([]T, 0, len(ms))), nil
}

// Clean returns the values of the full containers of cs, in order.
func Clean[T any, C monads.Container[T]](cs []C) []T {
	values := make([]T, 0, len(cs))
	for _, c := range cs {
		if v, ok := c.Get(); ok {
			values = append(values, v)
		}
	}
	return values
}

// ForEach calls f with the value of every full container of cs.
func ForEach[T any, C monads.Container[T]](cs []C, f func(T)) {
	for _, c := range cs {
		c.ForEach(f)
	}
}

// Is reports whether c is full and f holds for its value.
func Is[T any, C monads.Container[T]](f func(T) bool, c C) bool {
	return c.Is(f)
}

// Chain removes one level of nesting from mm by binding it with the
// identity, e.g. Chain(monads.FlatMapOption[monads.Option[int], int], mm).
func Chain[M, MM any](bind func(MM, func(M) M) M, mm MM) M {
	return bind(mm, func(m M) M { return m })
}

type mapper[T, M any] interface {
	Map(func(T) T) M
}

type flatMapper[T, M any] interface {
	FlatMap(func(T) M) M
}

func Map[T any, M mapper[T, M]](f func(T) T, m M) M {
	return m.Map(f)
}

func FlatMap[T any, M flatMapper[T, M]](f func(T) M, m M) M {
	return m.FlatMap(f)
}

// MapFn returns Map with f already applied.
func MapFn[T any, M mapper[T, M]](f func(T) T) func(M) M {
	return func(m M) M { return m.Map(f) }
}

// FlatMapFn returns FlatMap with f already applied.
func FlatMapFn[T any, M flatMapper[T, M]](f func(T) M) func(M) M {
	return func(m M) M { return m.FlatMap(f) }
}
