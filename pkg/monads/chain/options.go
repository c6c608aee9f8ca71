package chain

import "context"

type OptionKey string

const RecoverOptionKey OptionKey = "recover_options"

type RecoverOptions struct {
	Recover bool
}

// WithRecoverOptions decides whether Map recovers panics raised by the
// mapper into failures.
func WithRecoverOptions(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, RecoverOptionKey, RecoverOptions{Recover: enabled})
}

func IsRecoverEnabled(ctx context.Context, defaultRecover bool) bool {
	options, ok := ctx.Value(RecoverOptionKey).(RecoverOptions)
	if ok {
		return options.Recover
	}
	return defaultRecover
}
