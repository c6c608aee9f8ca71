package combinator

import "github.com/ib-77/monads/pkg/monads"

// Family tells the generic helpers how to build containers of []T for the
// family of M.
type Family[T, M, S any] struct {
	// Unit lifts the collected values into a full container.
	Unit func([]T) S
	// Bind passes the value of a full M to the continuation, or returns the
	// empty S that corresponds to an empty M.
	Bind func(M, func(T) S) S
	// Empty is returned by Flatten for an empty slice. When nil, Flatten
	// returns the zero S.
	Empty func() S
}

func Options[T any]() Family[T, monads.Option[T], monads.Option[[]T]] {
	return Family[T, monads.Option[T], monads.Option[[]T]]{
		Unit:  monads.Some[[]T],
		Bind:  monads.FlatMapOption[T, []T],
		Empty: monads.EmptyOption[[]T],
	}
}

func Results[T any]() Family[T, monads.Result[T], monads.Result[[]T]] {
	return Family[T, monads.Result[T], monads.Result[[]T]]{
		Unit:  monads.Success[[]T],
		Bind:  monads.FlatMapResult[T, []T],
		Empty: monads.EmptyResult[[]T],
	}
}

func Eithers[L, R any]() Family[R, monads.Either[L, R], monads.Either[L, []R]] {
	return Family[R, monads.Either[L, R], monads.Either[L, []R]]{
		Unit:  monads.Right[L, []R],
		Bind:  monads.FlatMapEither[L, R, []R],
		Empty: monads.EmptyEither[L, []R],
	}
}
