package envutil

import (
	"context"
)

type envContextKey string

// WithEnvOverride makes every reader called with the returned context see
// value for key, whatever the process environment says.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, envContextKey(key), value)
}

// WithEnvOverrides applies WithEnvOverride for each entry of vars.
func WithEnvOverrides(ctx context.Context, vars map[string]string) context.Context {
	for key, value := range vars {
		ctx = WithEnvOverride(ctx, key, value)
	}

	return ctx
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}
