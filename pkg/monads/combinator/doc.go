// Package combinator provides generic helpers that work the same way over
// Option, Result and Either.
//
// Key operations:
// - Flatten: turn a slice of containers into a container of a slice,
//   stopping at the first empty element
// - Clean: keep the values of the full containers
// - ForEach/Is: inspect full containers only
// - Chain: remove one level of nesting
// - Map/FlatMap and MapFn/FlatMapFn: free and curried forms of the methods
//
// Flatten needs to build containers of a new type, so it takes a Family
// describing the target family: Options, Results or Eithers.
package combinator
