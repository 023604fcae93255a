// Package sorting provides interchangeable in-place sorting strategies.
//
// Every [Strategy] rearranges the first size elements of a caller-owned
// slice into non-descending order under the comparator it was built with.
// None of them allocate, all use O(1) extra space, and none are stable.
//
// Comparators may signal invalid input (for example null text) by panicking
// with a precondition error; Sort turns such a panic into its return value.
// The slice is left permuted but not necessarily sorted in that case.
package sorting

import (
	"fmt"

	"github.com/amp-labs/amp-containers/compare"
	commonerrors "github.com/amp-labs/amp-containers/errors"
)

var (
	// ErrNilSequence is returned when a nil slice is sorted with a positive size.
	ErrNilSequence = commonerrors.Precondition("nil sequence with non-zero size")

	// ErrSizeOutOfRange is returned when size is negative or exceeds the slice length.
	ErrSizeOutOfRange = commonerrors.Precondition("size out of range")

	// ErrIndexOutOfRange is returned by Swap for an index outside the slice.
	ErrIndexOutOfRange = commonerrors.Precondition("index out of range")

	// ErrNilComparator is returned when a strategy was built without a comparator.
	ErrNilComparator = commonerrors.Precondition("nil comparator")

	// ErrUnknownStrategy is returned by New for a name that is not registered.
	ErrUnknownStrategy = commonerrors.Precondition("unknown sort strategy")
)

// Strategy is a stateless in-place sorting algorithm bound to a comparator.
// Strategies are safe to share between goroutines as long as each call works
// on its own slice.
type Strategy[T any] interface {
	// Name identifies the algorithm, e.g. "comb".
	Name() string

	// Sort orders seq[:size]. Elements past size are not touched.
	Sort(seq []T, size int) error

	// Swap exchanges seq[i] and seq[j].
	Swap(seq []T, i, j int) error
}

type algorithm[T any] func(cmp compare.Comparator[T], seq []T) (swapped int)

type strategy[T any] struct {
	name string
	cmp  compare.Comparator[T]
	algo algorithm[T]
}

func (s strategy[T]) Name() string {
	return s.name
}

func (s strategy[T]) Swap(seq []T, i, j int) error {
	if i < 0 || j < 0 || i >= len(seq) || j >= len(seq) {
		return fmt.Errorf("%w: swap(%d, %d) on %d elements", ErrIndexOutOfRange, i, j, len(seq))
	}

	seq[i], seq[j] = seq[j], seq[i]

	return nil
}

func (s strategy[T]) Sort(seq []T, size int) (err error) {
	if err := s.validate(seq, size); err != nil {
		runs.WithLabelValues(s.name, outcomeError).Inc()

		return err
	}

	if size < 2 {
		runs.WithLabelValues(s.name, outcomeOK).Inc()

		return nil
	}

	var exchanged int

	defer func() {
		swaps.WithLabelValues(s.name).Add(float64(exchanged))

		if err != nil {
			runs.WithLabelValues(s.name, outcomeError).Inc()
		} else {
			runs.WithLabelValues(s.name, outcomeOK).Inc()
		}
	}()

	defer compare.Guard(&err)

	exchanged = s.algo(s.cmp, seq[:size])

	return nil
}

func (s strategy[T]) validate(seq []T, size int) error {
	if s.cmp == nil {
		return fmt.Errorf("%w: %s", ErrNilComparator, s.name)
	}

	if seq == nil && size > 0 {
		return fmt.Errorf("%w: size %d", ErrNilSequence, size)
	}

	if size < 0 || size > len(seq) {
		return fmt.Errorf("%w: size %d for %d elements", ErrSizeOutOfRange, size, len(seq))
	}

	return nil
}

// IsSorted reports whether every adjacent pair of seq is in non-descending
// order under cmp.
func IsSorted[T any](seq []T, cmp compare.Comparator[T]) bool {
	for i := 1; i < len(seq); i++ {
		if cmp(seq[i-1], seq[i]) > 0 {
			return false
		}
	}

	return true
}
