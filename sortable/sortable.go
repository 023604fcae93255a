package sortable

import (
	"github.com/amp-labs/amp-containers/compare"
)

// Sortable is implemented by types that know both their equality and their
// strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator lifts any Sortable type into a three-way comparator, so wrapper
// types can be handed straight to the sorting strategies.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a):
			return 1
		default:
			return 0
		}
	}
}
