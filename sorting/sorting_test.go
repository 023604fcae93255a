package sorting_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-containers/compare"
	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/sortable"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	t.Parallel()

	for _, strategy := range sorting.All(compare.Ordered[int]()) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			seq := []int{5, 3, 8, 1, 9, 2}

			require.NoError(t, strategy.Sort(seq, len(seq)))
			assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, seq)
		})
	}
}

func TestSortsRandomInput(t *testing.T) {
	t.Parallel()

	sizes := []int{2, 3, 7, 13, 14, 100, 257, 1000}

	for _, strategy := range sorting.All(compare.Ordered[int]()) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(42, uint64(len(strategy.Name())))) //nolint:gosec

			for _, size := range sizes {
				seq := make([]int, size)
				for i := range seq {
					// A narrow range forces plenty of duplicates.
					seq[i] = rng.IntN(size/2 + 1)
				}

				expected := slices.Clone(seq)
				slices.Sort(expected)

				require.NoError(t, strategy.Sort(seq, size))

				if diff := cmp.Diff(expected, seq); diff != "" {
					t.Fatalf("%s(size=%d) mismatch (-want +got):\n%s", strategy.Name(), size, diff)
				}
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	for _, strategy := range sorting.All(compare.Ordered[int]()) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			seq := []int{9, 4, 4, 7, 1, 0, 3, 3, 8, 2, 6, 5}
			require.NoError(t, strategy.Sort(seq, len(seq)))

			once := slices.Clone(seq)
			require.NoError(t, strategy.Sort(seq, len(seq)))

			assert.Equal(t, once, seq)
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()

	words := []string{"pear", "Apple", "fig", "banana", "Cherry", "date", "kiwi", "grape", "lemon", "mango"}
	less := sortable.Comparator[sortable.Text]()

	var results [][]sortable.Text

	for _, strategy := range sorting.All(less) {
		seq := make([]sortable.Text, len(words))
		for i, w := range words {
			seq[i] = sortable.Text(w)
		}

		require.NoError(t, strategy.Sort(seq, len(seq)))
		require.True(t, sorting.IsSorted(seq, less), strategy.Name())

		results = append(results, seq)
	}

	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}

	assert.Equal(t, sortable.Text("Apple"), results[0][0])
	assert.Equal(t, sortable.Text("pear"), results[0][len(words)-1])
}

func TestPartialSize(t *testing.T) {
	t.Parallel()

	for _, strategy := range sorting.All(compare.Ordered[int]()) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			seq := []int{4, 2, 3, 1, 0, -1}
			require.NoError(t, strategy.Sort(seq, 4))

			assert.Equal(t, []int{1, 2, 3, 4, 0, -1}, seq)
		})
	}
}

func TestTrivialSizes(t *testing.T) {
	t.Parallel()

	for _, strategy := range sorting.All(compare.Ordered[int]()) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			require.NoError(t, strategy.Sort(nil, 0))
			require.NoError(t, strategy.Sort([]int{}, 0))

			seq := []int{3, 2, 1}
			require.NoError(t, strategy.Sort(seq, 0))
			require.NoError(t, strategy.Sort(seq, 1))

			assert.Equal(t, []int{3, 2, 1}, seq)
		})
	}
}

func TestPreconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy sorting.Strategy[int]
		seq      []int
		size     int
		err      error
	}{
		{"nil sequence", sorting.NewHeapSort(compare.Ordered[int]()), nil, 3, sorting.ErrNilSequence},
		{"negative size", sorting.NewCombSort(compare.Ordered[int]()), []int{1, 2}, -1, sorting.ErrSizeOutOfRange},
		{"size past end", sorting.NewShellSort(compare.Ordered[int]()), []int{1, 2}, 3, sorting.ErrSizeOutOfRange},
		{"nil comparator", sorting.NewCombSort[int](nil), []int{2, 1}, 2, sorting.ErrNilComparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.strategy.Sort(tt.seq, tt.size)
			require.ErrorIs(t, err, tt.err)
			require.True(t, commonerrors.IsPrecondition(err))
			require.False(t, commonerrors.IsExhausted(err))
		})
	}
}

func TestSwap(t *testing.T) {
	t.Parallel()

	strategy := sorting.NewShellSort(compare.Ordered[int]())
	seq := []int{1, 2, 3}

	require.NoError(t, strategy.Swap(seq, 0, 2))
	assert.Equal(t, []int{3, 2, 1}, seq)

	require.NoError(t, strategy.Swap(seq, 1, 1))
	assert.Equal(t, []int{3, 2, 1}, seq)

	require.ErrorIs(t, strategy.Swap(seq, 0, 3), sorting.ErrIndexOutOfRange)
	require.ErrorIs(t, strategy.Swap(seq, -1, 0), sorting.ErrIndexOutOfRange)
	require.ErrorIs(t, strategy.Swap(nil, 0, 0), sorting.ErrIndexOutOfRange)
}

func TestNullTextIsReturned(t *testing.T) {
	t.Parallel()

	for _, strategy := range sorting.All(compare.Bytes(compare.CaseSensitive())) {
		t.Run(strategy.Name(), func(t *testing.T) {
			t.Parallel()

			seq := [][]byte{[]byte("b"), nil, []byte("a")}

			err := strategy.Sort(seq, len(seq))
			require.ErrorIs(t, err, compare.ErrNullText)
			require.True(t, commonerrors.IsPrecondition(err))
		})
	}
}

func TestOtherPanicsPropagate(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	strategy := sorting.NewCombSort(func(int, int) int { panic(boom) })

	assert.PanicsWithError(t, "boom", func() {
		_ = strategy.Sort([]int{2, 1}, 2)
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"comb", "heap", "shell"}, sorting.Names())

	for _, name := range sorting.Names() {
		strategy, err := sorting.New(name, compare.Ordered[float64]())
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
	}

	strategy, err := sorting.New(" Heap ", compare.Ordered[int]())
	require.NoError(t, err)
	assert.Equal(t, sorting.HeapSort, strategy.Name())

	_, err = sorting.New("bogo", compare.Ordered[int]())
	require.ErrorIs(t, err, sorting.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "bogo")
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	ints := compare.Ordered[int]()

	assert.True(t, sorting.IsSorted(nil, ints))
	assert.True(t, sorting.IsSorted([]int{1}, ints))
	assert.True(t, sorting.IsSorted([]int{1, 1, 2}, ints))
	assert.False(t, sorting.IsSorted([]int{2, 1}, ints))
	assert.True(t, sorting.IsSorted([]int{2, 1}, ints.Reverse()))
}
