package stack

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	const name = "metrics-test"

	s := New(WithName[int](name), WithMaxCapacity[int](8))

	for i := range 8 {
		require.NoError(t, s.Push(i))
	}

	require.ErrorIs(t, s.Push(8), ErrCapacityExhausted)

	assert.InDelta(t, 2.0, testutil.ToFloat64(growths.WithLabelValues(name)), 0)
	assert.InDelta(t, 4.0, testutil.ToFloat64(relocated.WithLabelValues(name)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(growthErrors.WithLabelValues(name)), 0)
}
