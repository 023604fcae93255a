package sortable

import "math"

// Float64 is a sortable float64 with a total order: NaN sorts after every
// other value (including +Inf) and all NaNs are equal to each other.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

func (f Float64) Equals(other Float64) bool {
	return f.Compare(other) == 0
}

func (f Float64) LessThan(other Float64) bool {
	return f.Compare(other) < 0
}

func (f Float64) Compare(other Float64) int {
	aNaN, bNaN := math.IsNaN(float64(f)), math.IsNaN(float64(other))

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	default:
		return threeWay(f < other, f > other)
	}
}

func threeWay(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}
