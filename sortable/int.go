package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	values := []sortable.Int{5, 3, 7}
//	_ = sorting.NewHeapSort(sortable.Comparator[sortable.Int]()).Sort(values, len(values))
//	// values is now 3, 5, 7
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Compare returns -1, 0 or 1 as i is less than, equal to or greater than other.
func (i Int) Compare(other Int) int {
	return threeWay(i < other, i > other)
}
