package sorting

import "github.com/amp-labs/amp-containers/compare"

// NewHeapSort returns a heap sort. It is O(n log n) in the worst case.
func NewHeapSort[T any](cmp compare.Comparator[T]) Strategy[T] {
	return strategy[T]{name: HeapSort, cmp: cmp, algo: heapSort[T]}
}

func heapSort[T any](cmp compare.Comparator[T], seq []T) int {
	n := len(seq)
	swapped := 0

	for root := n/2 - 1; root >= 0; root-- {
		swapped += siftDown(cmp, seq, root, n)
	}

	for end := n - 1; end > 0; end-- {
		seq[0], seq[end] = seq[end], seq[0]
		swapped++

		swapped += siftDown(cmp, seq, 0, end)
	}

	return swapped
}

// siftDown restores the max-heap property for the subtree at root, looking
// only at seq[:end].
func siftDown[T any](cmp compare.Comparator[T], seq []T, root, end int) int {
	swapped := 0

	for {
		child := 2*root + 1
		if child >= end {
			return swapped
		}

		if child+1 < end && cmp(seq[child], seq[child+1]) < 0 {
			child++
		}

		if cmp(seq[root], seq[child]) >= 0 {
			return swapped
		}

		seq[root], seq[child] = seq[child], seq[root]
		swapped++
		root = child
	}
}
