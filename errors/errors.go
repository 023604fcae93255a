// Package errors defines the two error classes shared by every container in
// this module, plus a small accumulator for reporting several failures at once.
//
// Every package-level sentinel elsewhere in the module wraps exactly one of the
// class sentinels, so callers can match either the specific failure or its class:
//
//	if errors.Is(err, stack.ErrEmpty) { ... }            // specific
//	if errors.Is(err, errors.ErrPrecondition) { ... }    // class
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a caller mistake: empty access, an out-of-range size,
	// dereferencing an unbound pointer, comparing null text.
	ErrPrecondition = errors.New("precondition violation")

	// ErrResourceExhausted marks an allocation that could not be satisfied.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrPanicRecovery wraps a panic value that was converted into an error.
	ErrPanicRecovery = errors.New("recovered from panic")
)

// Precondition returns a new sentinel in the precondition class.
func Precondition(msg string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, msg)
}

// Exhausted returns a new sentinel in the resource-exhaustion class.
func Exhausted(msg string) error {
	return fmt.Errorf("%w: %s", ErrResourceExhausted, msg)
}

// IsPrecondition reports whether err belongs to the precondition class.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// IsExhausted reports whether err belongs to the resource-exhaustion class.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrResourceExhausted)
}

// FromPanic converts a recovered panic value into an error. Errors are wrapped
// with ErrPanicRecovery so the original chain is still visible to errors.Is.
// A nil value yields nil.
func FromPanic(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicRecovery, err)
	}

	return fmt.Errorf("%w: %v", ErrPanicRecovery, val)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent steps must all run (shutting down
// exporters, releasing a batch of values) and their failures are reported
// together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
