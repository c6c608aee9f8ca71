package monads

// Container is the read side shared by Option, Result and Either.
type Container[T any] interface {
	// HasValue reports whether the container is the full variant
	// (Some, Success or Right).
	HasValue() bool
	// IsEmpty is the negation of HasValue.
	IsEmpty() bool
	// Get returns the value of a full container.
	Get() (T, bool)
	// ForEach calls f with the value of a full container.
	ForEach(f func(T))
	// Is reports whether the container is full and f holds for its value.
	Is(f func(T) bool) bool
}

// Monad is a Container that can build further containers of its own family
// M. Option[T], Result[T] and Either[L, T] all implement Monad[T, Self].
type Monad[T any, M any] interface {
	Container[T]
	// Unit wraps a bare value into a full container of the same family.
	Unit(v T) M
	Map(f func(T) T) M
	FlatMap(f func(T) M) M
	// Empty returns the canonical empty container of the family.
	Empty() M
}

// Reduce returns seed for an empty container and f(seed, value) for a full one.
func Reduce[T, V any, C Container[T]](c C, f func(V, T) V, seed V) V {
	if v, ok := c.Get(); ok {
		return f(seed, v)
	}
	return seed
}
