package chain

import (
	"context"
	"errors"

	"github.com/ib-77/monads/pkg/monads"
)

// Chain wraps a monads.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result monads.Result[T]
}

// Start creates a new chain from a monads.Result
func Start[T any](ctx context.Context, result monads.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, monads.Success(value))
}

// Attempt creates a new chain from f, turning a panic into a failure
func Attempt[T any](ctx context.Context, f func(context.Context) T) *Chain[T] {
	return Start(ctx, monads.Attempt(func() T { return f(ctx) }))
}

// Result returns the underlying monads.Result
func (c *Chain[T]) Result() monads.Result[T] {
	return c.result
}

// Then chains a function that returns monads.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) monads.Result[U]) *Chain[U] {
	return next(c, func(v T) monads.Result[U] {
		return onSuccess(c.ctx, v)
	})
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, func(v T) monads.Result[U] {
		return monads.FromPair(tryOnSuccess(c.ctx, v))
	})
}

// Map chains a pure transformation function. A panic in onSuccess becomes a
// failure unless recovering is switched off with WithRecoverOptions.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return next(c, func(v T) monads.Result[U] {
		if IsRecoverEnabled(c.ctx, true) {
			return monads.Attempt(func() U { return onSuccess(c.ctx, v) })
		}
		return monads.Success(onSuccess(c.ctx, v))
	})
}

// Validate fails the chain with errMsg when validate reports an invalid value
func (c *Chain[T]) Validate(validate func(context.Context, T) (isValid bool, errMsg string)) *Chain[T] {
	return next(c, func(v T) monads.Result[T] {
		if isValid, errMsg := validate(c.ctx, v); !isValid {
			return monads.Failure[T](errors.New(errMsg))
		}
		return c.result
	})
}

// ValidateAll runs validators in order. The first error fails the chain and
// the remaining validators are not called.
func (c *Chain[T]) ValidateAll(validators ...func(context.Context, T) error) *Chain[T] {
	return next(c, func(v T) monads.Result[T] {
		for _, validate := range validators {
			if err := c.ctx.Err(); err != nil {
				return monads.Failure[T](err)
			}
			if err := validate(c.ctx, v); err != nil {
				return monads.Failure[T](err)
			}
		}
		return c.result
	})
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return next(c, func(v T) monads.Result[T] {
		onSuccess(c.ctx, v)
		return c.result
	})
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T]) OnFailure(onFailure func(context.Context, error)) *Chain[T] {
	if !c.result.Succeeded() {
		onFailure(c.ctx, c.result.Err())
	}
	return c
}

// Finally collapses the chain into a final value. Failures caused by a
// cancelled or expired context go to onCancel.
func Finally[T, U any](c *Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {
	if c.result.Succeeded() {
		return onSuccess(c.ctx, c.result.Value())
	}
	if monads.IsCancellationError(c.result.Err()) {
		return onCancel(c.ctx, c.result.Err())
	}
	return onFailure(c.ctx, c.result.Err())
}

func next[T, U any](c *Chain[T], step func(T) monads.Result[U]) *Chain[U] {
	if !c.result.Succeeded() {
		monads.Logger().WithError(c.result.Err()).Debug("chain: step skipped")
		return &Chain[U]{ctx: c.ctx, result: monads.FailureFrom[T, U](c.result)}
	}

	if err := c.ctx.Err(); err != nil {
		monads.Logger().WithError(err).Debug("chain: context done")
		return &Chain[U]{ctx: c.ctx, result: monads.Failure[U](err)}
	}

	return &Chain[U]{ctx: c.ctx, result: step(c.result.Value())}
}
