package compare

import (
	"cmp"
)

// Comparator is a three-way ordering function over T.
//
// It returns -1 if a precedes b, 1 if a follows b and 0 if the two are
// equivalent under the order. Implementations must be pure and describe a
// total, antisymmetric, transitive order.
type Comparator[T any] func(a, b T) int

// Sign normalizes an arbitrary integer comparison result to -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Ordered returns the default comparator for types with a native ordering.
// It is built on the < and > operators only. Two values that are neither
// less nor greater than each other compare as 0, which is what happens for
// NaN: callers that sort floats containing NaN should supply their own order.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int {
		if a < b {
			return -1
		}

		if a > b {
			return 1
		}

		return 0
	}
}

// Func wraps an arbitrary comparison function (such as strings.Compare or
// bytes.Compare) and normalizes its result to -1, 0 or 1.
func Func[T any](f func(a, b T) int) Comparator[T] {
	return func(a, b T) int {
		return Sign(f(a, b))
	}
}

// Less builds a comparator out of a strict "less than" relation.
func Less[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}

		if less(b, a) {
			return 1
		}

		return 0
	}
}

// Reverse returns a comparator describing the opposite order.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Equal reports whether a and b are equivalent under the order.
func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

// Less reports whether a strictly precedes b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Then returns a comparator that breaks ties of c using next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

// By projects values onto a key and orders them by the key comparator.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Ordered[int]())
func By[T any, K any](key func(T) K, keyCmp Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return keyCmp(key(a), key(b))
	}
}
