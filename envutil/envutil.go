// Package envutil reads typed configuration values from the environment.
//
// Every reader takes a context first: values set with WithEnvOverride on the
// context win over the process environment, which keeps tests free of
// os.Setenv.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-containers/xform"
)

// get returns a Reader for the given key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// NewReader builds a Reader from values obtained elsewhere, for instance a
// config file, so they can be combined with environment readers.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// String reads a raw string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Strings reads a comma separated list.
func Strings(ctx context.Context, key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(ctx, key), xform.SplitList), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(ctx, key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

func Uint[U xform.Uintish](ctx context.Context, key string, opts ...Option[U]) Reader[U] {
	return apply(Map(Map(get(ctx, key), xform.Uint64), xform.CastNumeric[uint64, U]), opts)
}

func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), xform.Duration), opts)
}

// SlogLevel reads a log level name such as "debug" or "WARN".
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}

// FilePath reads a path that must name an existing regular file.
func FilePath(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(ctx, key), xform.PathIsFile), opts)
}

// Choice reads a lowercased value that must be one of choices.
func Choice(ctx context.Context, key string, choices []string, opts ...Option[string]) Reader[string] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.OneOf(choices...))

	return apply(rdr, opts)
}
