package ownership_test

import (
	"testing"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/ownership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextTraits_Duplicate(t *testing.T) {
	t.Parallel()

	traits := ownership.TextTraits{}

	t.Run("independent buffer", func(t *testing.T) {
		t.Parallel()

		orig := ownership.NewText("hello")

		dup, err := traits.Duplicate(orig)
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, "hello", dup.String())

		require.NoError(t, dup.Append(", world"))
		assert.Equal(t, "hello", orig.String())
		assert.Equal(t, "hello, world", dup.String())
	})

	t.Run("null duplicates to null", func(t *testing.T) {
		t.Parallel()

		dup, err := traits.Duplicate(nil)
		require.NoError(t, err)
		assert.Nil(t, dup)
	})

	t.Run("empty text is not null", func(t *testing.T) {
		t.Parallel()

		dup, err := traits.Duplicate(ownership.NewText(""))
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.False(t, traits.IsNull(dup))
		assert.Equal(t, 0, dup.Len())
	})

	t.Run("allocation failure is reported", func(t *testing.T) {
		t.Parallel()

		budget := ownership.NewBudget(3)
		limited := ownership.TextTraits{Alloc: budget}

		dup, err := limited.Duplicate(ownership.NewText("too long"))
		require.ErrorIs(t, err, ownership.ErrAllocationFailed)
		require.True(t, commonerrors.IsExhausted(err))
		require.False(t, commonerrors.IsPrecondition(err))
		assert.Nil(t, dup)
		assert.Zero(t, budget.InUse())
	})
}

func TestTextTraits_Release(t *testing.T) {
	t.Parallel()

	budget := ownership.NewBudget(64)
	traits := ownership.TextTraits{Alloc: budget}

	text, err := ownership.NewTextWith(budget, "payload")
	require.NoError(t, err)
	assert.Equal(t, int64(7), budget.InUse())

	alias := text

	traits.Release(&text)
	assert.Nil(t, text)
	assert.Zero(t, budget.InUse())

	// Releasing again, directly or through an alias, changes nothing.
	traits.Release(&text)
	traits.Release(&alias)

	assert.Nil(t, alias)
	assert.Zero(t, budget.InUse())
	assert.Zero(t, budget.Outstanding())
}

func TestTextTraits_Null(t *testing.T) {
	t.Parallel()

	traits := ownership.TextTraits{}

	assert.Nil(t, traits.Null())
	assert.True(t, traits.IsNull(nil))
	assert.False(t, traits.IsNull(ownership.NewText("x")))
	assert.False(t, ownership.IsTriviallyRelocatable[*ownership.Text](traits))
}

func TestText(t *testing.T) {
	t.Parallel()

	var null *ownership.Text

	assert.Empty(t, null.String())
	assert.Nil(t, null.Bytes())
	assert.Equal(t, 0, null.Len())
	assert.True(t, null.Released())
	require.ErrorIs(t, null.Append("x"), ownership.ErrAllocationFailed)

	text := ownership.NewText("abc")
	assert.Equal(t, []byte("abc"), text.Bytes())
	assert.Equal(t, 3, text.Len())
}

func TestBudget(t *testing.T) {
	t.Parallel()

	budget := ownership.NewBudget(10)

	a, err := budget.Allocate(6)
	require.NoError(t, err)

	_, err = budget.Allocate(5)
	require.ErrorIs(t, err, ownership.ErrAllocationFailed)

	b, err := budget.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), budget.InUse())
	assert.Equal(t, int64(10), budget.Limit())

	budget.Free(a)
	budget.Free(b)
	budget.Free(nil)

	assert.Zero(t, budget.InUse())
	assert.Zero(t, budget.Outstanding())

	_, err = budget.Allocate(-1)
	require.ErrorIs(t, err, ownership.ErrAllocationFailed)
}
