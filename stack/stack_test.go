package stack_test

import (
	"slices"
	"testing"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/ownership"
	"github.com/amp-labs/amp-containers/stack"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPop_Order(t *testing.T) {
	t.Parallel()

	s := stack.New[int](stack.WithLogger[int](slogt.New(t)))

	for _, v := range []int{3, 1, 4, 1, 5} {
		require.NoError(t, s.Push(v))
	}

	assert.Equal(t, 5, s.Count())

	var popped []int

	for range 5 {
		v, err := s.Pop()
		require.NoError(t, err)

		popped = append(popped, v)
	}

	assert.Equal(t, []int{5, 1, 4, 1, 3}, popped)
	assert.True(t, s.IsEmpty())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	s := stack.New[string]()

	v, err := s.Pop()
	require.ErrorIs(t, err, stack.ErrEmpty)
	require.True(t, commonerrors.IsPrecondition(err))
	assert.Empty(t, v)

	_, err = s.Peek()
	require.ErrorIs(t, err, stack.ErrEmpty)

	require.NoError(t, s.Push("x"))

	_, err = s.Pop()
	require.NoError(t, err)

	_, err = s.Pop()
	require.ErrorIs(t, err, stack.ErrEmpty)
}

func TestPeek(t *testing.T) {
	t.Parallel()

	s := stack.New[int]()

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, s.Count())
}

func TestGrowth_Doubling(t *testing.T) {
	t.Parallel()

	s := stack.New[int](stack.WithLogger[int](slogt.New(t)))
	assert.Equal(t, 0, s.Capacity())

	var capacities []int

	for i := range 20 {
		require.NoError(t, s.Push(i))

		if !slices.Contains(capacities, s.Capacity()) {
			capacities = append(capacities, s.Capacity())
		}

		assert.GreaterOrEqual(t, s.Capacity(), s.Count())
	}

	assert.Equal(t, []int{4, 8, 16, 32}, capacities)

	expected := make([]int, 20)
	for i := range expected {
		expected[i] = i
	}

	assert.Equal(t, expected, s.Slice(), "growth never drops or reorders elements")
}

func TestGrowth_FixedStep(t *testing.T) {
	t.Parallel()

	s := stack.New(
		stack.WithGrowthStep[int](3),
		stack.WithInitialCapacity[int](2),
	)
	assert.Equal(t, 2, s.Capacity())

	for i := range 6 {
		require.NoError(t, s.Push(i))
	}

	assert.Equal(t, 8, s.Capacity())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Slice())
}

func TestGrowth_MaxCapacity(t *testing.T) {
	t.Parallel()

	s := stack.New(
		stack.WithMaxCapacity[int](6),
		stack.WithName[int]("bounded"),
	)

	for i := range 6 {
		require.NoError(t, s.Push(i))
	}

	assert.Equal(t, 6, s.Capacity())

	err := s.Push(6)
	require.ErrorIs(t, err, stack.ErrCapacityExhausted)
	require.True(t, commonerrors.IsExhausted(err))
	require.False(t, commonerrors.IsPrecondition(err))

	assert.Equal(t, 6, s.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Slice())
}

func TestGrowth_ImpossibleSize(t *testing.T) {
	t.Parallel()

	s := stack.New(stack.WithGrowthStep[int](1 << 62))

	err := s.Push(1)
	require.ErrorIs(t, err, stack.ErrCapacityExhausted)
	assert.True(t, commonerrors.IsExhausted(err))
	assert.Zero(t, s.Count())
	assert.Zero(t, s.Capacity())

	huge := stack.New(stack.WithInitialCapacity[int](1 << 62))
	assert.Zero(t, huge.Capacity())
	require.NoError(t, huge.Push(7))

	top, err := huge.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, top)
}

func TestGrowth_ImpossibleSizeKeepsElements(t *testing.T) {
	t.Parallel()

	s := stack.New(stack.WithInitialCapacity[int](4), stack.WithGrowthStep[int](1<<62))

	for i := range 4 {
		require.NoError(t, s.Push(i))
	}

	require.ErrorIs(t, s.Push(4), stack.ErrCapacityExhausted)
	assert.Equal(t, 4, s.Capacity())
	assert.Equal(t, []int{0, 1, 2, 3}, s.Slice())
}

func TestInitialCapacityClampedToMax(t *testing.T) {
	t.Parallel()

	s := stack.New(
		stack.WithInitialCapacity[int](100),
		stack.WithMaxCapacity[int](10),
	)

	assert.Equal(t, 10, s.Capacity())
}

func TestPopKeepsCapacity(t *testing.T) {
	t.Parallel()

	s := stack.New[int]()

	for i := range 9 {
		require.NoError(t, s.Push(i))
	}

	capacity := s.Capacity()

	for range 9 {
		_, err := s.Pop()
		require.NoError(t, err)
	}

	assert.Equal(t, capacity, s.Capacity())
}

func TestClear(t *testing.T) {
	t.Parallel()

	t.Run("keep memory", func(t *testing.T) {
		t.Parallel()

		s := stack.New[int]()
		for i := range 5 {
			require.NoError(t, s.Push(i))
		}

		capacity := s.Capacity()
		s.Clear(false)

		assert.Equal(t, 0, s.Count())
		assert.Equal(t, capacity, s.Capacity())

		require.NoError(t, s.Push(42))
		assert.Equal(t, capacity, s.Capacity())
	})

	t.Run("free memory", func(t *testing.T) {
		t.Parallel()

		s := stack.New[int]()
		for i := range 5 {
			require.NoError(t, s.Push(i))
		}

		s.Clear(true)

		assert.Equal(t, 0, s.Count())
		assert.Equal(t, 0, s.Capacity())

		_, err := s.Peek()
		require.ErrorIs(t, err, stack.ErrEmpty)
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	s := stack.New[string]()
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, s.Push(v))
	}

	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(s.All()))

	for v := range s.All() {
		assert.Equal(t, "c", v)

		break
	}
}

func TestOwningElements(t *testing.T) {
	t.Parallel()

	budget := ownership.NewBudget(1 << 10)
	s := stack.New(
		stack.WithTraits[*ownership.Text](ownership.TextTraits{Alloc: budget}),
		stack.WithLogger[*ownership.Text](slogt.New(t)),
	)

	var pushed []*ownership.Text

	for _, word := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"} {
		text, err := ownership.NewTextWith(budget, word)
		require.NoError(t, err)

		pushed = append(pushed, text)

		require.NoError(t, s.Push(text))
	}

	// Growth moved the handles without duplicating or releasing them.
	assert.Equal(t, int64(6), budget.Outstanding())

	for _, text := range pushed {
		assert.False(t, text.Released())
	}

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "zeta", top.String())
	assert.False(t, top.Released())

	s.Clear(true)

	for _, text := range pushed[:5] {
		assert.True(t, text.Released())
	}

	// The popped element belongs to the caller.
	assert.False(t, top.Released())
	assert.Equal(t, int64(1), budget.Outstanding())
}
