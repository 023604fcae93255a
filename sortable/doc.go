// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be ordered by generic code without the
// caller passing a comparator around.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-containers/compare.Comparable]
// with a LessThan method. Ready-to-use implementations exist for [Int], [Byte],
// [Float64], [String] and [Text] (ASCII case-insensitive). Each wrapper also has
// a three-way Compare method.
//
// [Comparator] bridges any Sortable type to a
// [github.com/amp-labs/amp-containers/compare.Comparator], which is what the
// sorting strategies consume:
//
//	words := []sortable.Text{"banana", "Apple", "cherry"}
//	strategy := sorting.NewShellSort(sortable.Comparator[sortable.Text]())
//	if err := strategy.Sort(words, len(words)); err != nil {
//	    return err
//	}
//	// words: Apple, banana, cherry
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// LessThan must be a strict weak order consistent with Equals, otherwise the
// derived comparator is not a total order and sorting results are undefined.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
