// Package compare provides equality and three-way ordering contracts for
// generic code.
//
// [Comparable] is the equality-only contract for types that decide for
// themselves when two values are equal. [Comparator] is a stateless
// three-way ordering function: it returns -1 if a precedes b, 1 if it follows,
// and 0 if the two are equivalent. Every Comparator handed to a sorting
// routine must describe a total order.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
