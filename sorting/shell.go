package sorting

import "github.com/amp-labs/amp-containers/compare"

// NewShellSort returns a Shell sort using Knuth's 1, 4, 13, 40, ... gaps.
func NewShellSort[T any](cmp compare.Comparator[T]) Strategy[T] {
	return strategy[T]{name: ShellSort, cmp: cmp, algo: shellSort[T]}
}

func shellSort[T any](cmp compare.Comparator[T], seq []T) int {
	n := len(seq)
	swapped := 0

	h := 1
	for 3*h+1 < n {
		h = 3*h + 1
	}

	for ; h >= 1; h /= 3 {
		for i := h; i < n; i++ {
			for j := i; j >= h && cmp(seq[j-h], seq[j]) > 0; j -= h {
				seq[j-h], seq[j] = seq[j], seq[j-h]
				swapped++
			}
		}
	}

	return swapped
}
