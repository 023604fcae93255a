package sorting

import "github.com/amp-labs/amp-containers/compare"

// NewCombSort returns a comb sort: bubble-sort passes over a gap that
// shrinks by a factor of 13/10 per pass, until a pass with gap 1 makes no
// exchange.
func NewCombSort[T any](cmp compare.Comparator[T]) Strategy[T] {
	return strategy[T]{name: CombSort, cmp: cmp, algo: combSort[T]}
}

func combSort[T any](cmp compare.Comparator[T], seq []T) int {
	var (
		n       = len(seq)
		gap     = n
		swapped = 0
	)

	for {
		gap = nextCombGap(gap)

		exchanged := false

		for i := 0; i+gap < n; i++ {
			if cmp(seq[i], seq[i+gap]) > 0 {
				seq[i], seq[i+gap] = seq[i+gap], seq[i]
				exchanged = true
				swapped++
			}
		}

		if gap == 1 && !exchanged {
			return swapped
		}
	}
}

// Gaps of 9 and 10 are bumped to 11, which is known to finish faster.
func nextCombGap(gap int) int {
	gap = gap * 10 / 13

	switch {
	case gap == 9 || gap == 10:
		return 11
	case gap < 1:
		return 1
	default:
		return gap
	}
}
