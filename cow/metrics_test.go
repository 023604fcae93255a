package cow

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	createdBefore := testutil.ToFloat64(cellsCreated)
	dupBefore := testutil.ToFloat64(duplications)
	releasedBefore := testutil.ToFloat64(cellsReleased)

	p1 := New(10)
	p2 := p1.Clone()

	require.NoError(t, p2.Update(func(v *int) { *v++ }))

	p1.Reset()
	p2.Reset()

	// Other tests may run concurrently, so only lower bounds are stable.
	assert.GreaterOrEqual(t, testutil.ToFloat64(cellsCreated)-createdBefore, 2.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(duplications)-dupBefore, 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(cellsReleased)-releasedBefore, 2.0)
}
