// Package envutil reads typed configuration from environment variables.
//
//	workers := envutil.Int[int](ctx, "SORT_WORKER_COUNT",
//	    envutil.Default(8)).ValueOrElse(8)
//
// Values can be overridden per-context with WithEnvOverride, which is how
// tests exercise configuration without touching the process environment.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless
// of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

func get(ctx context.Context, key string) Reader[string] {
	if ctx != nil {
		if val, ok := ctx.Value(envContextKey(key)).(string); ok {
			return Reader[string]{key: key, present: true, value: val}
		}
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

// String reads a raw string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a boolean in any form strconv.ParseBool accepts.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int reads a base-10 integer and narrows it to I, failing on overflow.
func Int[I ~int | ~int8 | ~int16 | ~int32 | ~int64](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(ctx, key), func(s string) (I, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, err
		}

		if int64(I(n)) != n {
			return 0, fmt.Errorf("%w: %d overflows", strconv.ErrRange, n)
		}

		return I(n), nil
	}), opts)
}

// Float64 reads a floating-point number.
func Float64(ctx context.Context, key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(get(ctx, key), func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}), opts)
}

// Duration reads anything time.ParseDuration accepts, e.g. "1.5s".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel reads one of debug, info, warn or error (case-insensitive).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), func(s string) (slog.Level, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "debug":
			return slog.LevelDebug, nil
		case "info":
			return slog.LevelInfo, nil
		case "warn":
			return slog.LevelWarn, nil
		case "error":
			return slog.LevelError, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
		}
	}), opts)
}
