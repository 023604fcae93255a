// Package xform holds small parse-and-validate steps that are chained
// together with envutil.Map when reading configuration.
package xform

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TrimString removes leading and trailing whitespace.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower lowercases s.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// SplitList splits a comma separated list, trimming each item and dropping
// empty ones: " comb, ,heap " yields [comb heap].
func SplitList(s string) ([]string, error) {
	var out []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out, nil
}

// OneOf returns a transformer that accepts only the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// AllOf is OneOf applied to every element of a list.
func AllOf[A comparable](choices ...A) func([]A) ([]A, error) {
	one := OneOf(choices...)

	return func(values []A) ([]A, error) {
		for _, v := range values {
			if _, err := one(v); err != nil {
				return values, err
			}
		}

		return values, nil
	}
}

// Bool parses a string as a boolean, as strconv.ParseBool does.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(value))
}

// Int64 parses a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

// Uint64 parses a base-10 uint64.
func Uint64(value string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(value), 10, 64)
}

// Positive rejects values <= 0 with ErrNonPositive.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// Duration parses a string such as "1m30s" with time.ParseDuration.
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(value))
}

// CastNumeric converts between numeric types. It truncates the way a Go
// conversion does.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// SlogLevel parses "debug", "info", "warn" or "error".
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// PathIsFile requires value to name an existing regular file.
func PathIsFile(value string) (string, error) {
	info, err := os.Stat(value)
	if err != nil {
		return value, err
	}

	if !info.Mode().IsRegular() {
		return value, fmt.Errorf("%w: %s", ErrNotAFile, value)
	}

	return value, nil
}
