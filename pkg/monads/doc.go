// Package monads contains three immutable containers that replace nil checks
// and panics with value pipelines, plus the pieces they share.
//
// Highlights:
// - Option[T]: Some/None, built with Some, None, Maybe or FromPtr
// - Result[T]: Success/Failure, built with Attempt, AttemptErr, FromPair,
//   FromValue, FromError or FromErrorOrValue
// - Either[L, R]: Left/Right, right-biased
// - MapOption/MapResult/MapEither and friends: type-changing transformations
// - Reduce: fold any container into a value
// - DeepEqual: the structural equality behind every Equal method
// - Deferred[T]: a value settled later; ToDeferred on every container and
//   WrapDeferred to turn a deferred into a deferred Result
//
// Containers compose with the generic helpers of package combinator.
package monads
