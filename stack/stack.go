// Package stack provides a growable, contiguous LIFO container.
//
// A [Stack] keeps its elements in one buffer. Pushing onto a full stack
// replaces the buffer with a larger one, either twice as large (the default)
// or larger by a fixed step chosen at construction. Elements are moved into
// the new buffer with [ownership.Relocate], so element types that own
// resources keep exactly one live handle per element.
//
// A Stack is not safe for concurrent use.
package stack

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"runtime"
	"unsafe"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/ownership"
)

const minCapacity = 4

var (
	// ErrEmpty is returned by Pop and Peek on an empty stack.
	ErrEmpty = commonerrors.Precondition("stack is empty")

	// ErrCapacityExhausted is returned by Push when the buffer cannot grow.
	ErrCapacityExhausted = commonerrors.Exhausted("stack capacity exhausted")
)

type stackOptions[T any] struct {
	name        string
	step        int
	initial     int
	maxCapacity int
	traits      ownership.Traits[T]
	logger      *slog.Logger
}

// Option configures a Stack.
type Option[T any] func(*stackOptions[T])

// WithGrowthStep makes the stack grow by a fixed number of slots instead of
// doubling. Non-positive steps keep the doubling policy.
func WithGrowthStep[T any](step int) Option[T] {
	return func(o *stackOptions[T]) {
		o.step = step
	}
}

// WithInitialCapacity preallocates the buffer.
func WithInitialCapacity[T any](capacity int) Option[T] {
	return func(o *stackOptions[T]) {
		o.initial = capacity
	}
}

// WithMaxCapacity caps the buffer size. Pushing onto a full stack at the cap
// fails with ErrCapacityExhausted. Zero means no cap.
func WithMaxCapacity[T any](capacity int) Option[T] {
	return func(o *stackOptions[T]) {
		o.maxCapacity = capacity
	}
}

// WithTraits sets the ownership traits used to relocate and release
// elements. The default is ownership.Value.
func WithTraits[T any](traits ownership.Traits[T]) Option[T] {
	return func(o *stackOptions[T]) {
		o.traits = traits
	}
}

// WithLogger sets the logger used for growth events. The default is slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *stackOptions[T]) {
		o.logger = logger
	}
}

// WithName labels the stack's metrics and log lines.
func WithName[T any](name string) Option[T] {
	return func(o *stackOptions[T]) {
		o.name = name
	}
}

// Stack is a growable LIFO container. Occupied slots are [0, Count()) of the
// buffer and Capacity() >= Count() always holds.
type Stack[T any] struct {
	buf  []T
	size int
	opts stackOptions[T]
}

// New creates an empty stack.
func New[T any](opts ...Option[T]) *Stack[T] {
	options := stackOptions[T]{
		name: "stack",
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.traits == nil {
		options.traits = ownership.Value[T]()
	}

	if options.maxCapacity > 0 && options.initial > options.maxCapacity {
		options.initial = options.maxCapacity
	}

	s := &Stack[T]{opts: options}

	if options.initial > 0 {
		// An impossible preallocation is skipped; the first Push reports it.
		if buf, err := allocate[T](options.initial); err == nil {
			s.buf = buf
		}
	}

	return s
}

// Push stores value on top of the stack, growing the buffer first if it is
// full. The stack takes ownership of value.
func (s *Stack[T]) Push(value T) error {
	if s.size == len(s.buf) {
		if err := s.grow(); err != nil {
			return err
		}
	}

	s.buf[s.size] = value
	s.size++

	return nil
}

// Pop removes the top element and hands its ownership to the caller. The
// vacated slot is reset to the null value; capacity is unchanged.
func (s *Stack[T]) Pop() (T, error) {
	if s.size == 0 {
		return s.opts.traits.Null(), ErrEmpty
	}

	s.size--

	value := s.buf[s.size]
	s.buf[s.size] = s.opts.traits.Null()

	return value, nil
}

// Peek returns the top element without removing it. The element stays owned
// by the stack.
func (s *Stack[T]) Peek() (T, error) {
	if s.size == 0 {
		return s.opts.traits.Null(), ErrEmpty
	}

	return s.buf[s.size-1], nil
}

// Count returns the number of elements on the stack.
func (s *Stack[T]) Count() int {
	return s.size
}

// Capacity returns the size of the current buffer.
func (s *Stack[T]) Capacity() int {
	return len(s.buf)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear releases every element through the stack's traits and empties the
// stack. With freeMemory the buffer is dropped and capacity becomes zero;
// otherwise the buffer is kept for reuse.
func (s *Stack[T]) Clear(freeMemory bool) {
	null := s.opts.traits.Null()

	for i := range s.size {
		s.opts.traits.Release(&s.buf[i])
		s.buf[i] = null
	}

	s.size = 0

	if freeMemory {
		s.buf = nil
	}
}

// All iterates from the top of the stack to the bottom. The stack must not
// be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// Slice returns a shallow copy of the elements from bottom to top.
func (s *Stack[T]) Slice() []T {
	out := make([]T, s.size)
	copy(out, s.buf[:s.size])

	return out
}

func (s *Stack[T]) nextCapacity() (int, error) {
	current := len(s.buf)

	var target int

	switch {
	case s.opts.step > 0:
		target = current + s.opts.step
	case current == 0:
		target = minCapacity
	default:
		target = current * 2
	}

	if target <= current {
		return 0, fmt.Errorf("%w: capacity %d cannot grow further", ErrCapacityExhausted, current)
	}

	if s.opts.maxCapacity > 0 && target > s.opts.maxCapacity {
		if current >= s.opts.maxCapacity {
			return 0, fmt.Errorf("%w: maximum capacity %d reached", ErrCapacityExhausted, s.opts.maxCapacity)
		}

		target = s.opts.maxCapacity
	}

	return target, nil
}

func (s *Stack[T]) grow() error {
	target, err := s.nextCapacity()
	if err != nil {
		growthErrors.WithLabelValues(s.opts.name).Inc()

		return err
	}

	previous := len(s.buf)

	next, err := allocate[T](target)
	if err != nil {
		growthErrors.WithLabelValues(s.opts.name).Inc()

		return err
	}

	moved := ownership.Relocate(s.opts.traits, next, s.buf[:s.size])

	s.buf = next

	growths.WithLabelValues(s.opts.name).Inc()
	relocated.WithLabelValues(s.opts.name).Add(float64(moved))

	s.log().Debug("stack grown",
		"stack", s.opts.name,
		"from", previous,
		"to", target,
		"moved", moved)

	return nil
}

// maxElements is the largest buffer of T whose size in bytes fits in an int.
func maxElements[T any]() int {
	var zero T

	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}

	return math.MaxInt / size
}

// allocate makes a buffer of n elements, turning a length the runtime
// cannot satisfy into ErrCapacityExhausted instead of a panic.
func allocate[T any](n int) (buf []T, err error) {
	if n < 0 || n > maxElements[T]() {
		return nil, fmt.Errorf("%w: cannot allocate %d elements", ErrCapacityExhausted, n)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var rtErr runtime.Error
		if e, ok := r.(error); ok && errors.As(e, &rtErr) {
			buf, err = nil, fmt.Errorf("%w: allocating %d elements: %w", ErrCapacityExhausted, n, rtErr)

			return
		}

		panic(r)
	}()

	return make([]T, n), nil
}

func (s *Stack[T]) log() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}

	return slog.Default()
}
