// Package chain provides a fluent wrapper around monads.Result[T] for
// building synchronous, context-aware pipelines.
//
// Every step checks the chain context first: once it is done the chain
// fails with the context error and no further step runs.
//
// Key operations:
// - Start/FromValue/Attempt: begin a chain from a Result[T], a value or a computation
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U), recovering panics unless disabled
// - Validate/ValidateAll: turn the first invalid check into a failure
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
