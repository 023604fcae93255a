package sortable_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-containers/sortable"
	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Int(3).LessThan(4))
	assert.False(t, sortable.Int(4).LessThan(4))
	assert.True(t, sortable.Int(4).Equals(4))
	assert.Equal(t, -1, sortable.Int(-2).Compare(5))
	assert.Equal(t, 1, sortable.Int(5).Compare(-2))
	assert.Equal(t, 0, sortable.Int(5).Compare(5))
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Byte('a').LessThan('b'))
	assert.True(t, sortable.Byte('z').Equals('z'))
	assert.Equal(t, 1, sortable.Byte('b').Compare('a'))
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	nan := sortable.Float64(math.NaN())
	inf := sortable.Float64(math.Inf(1))

	tests := []struct {
		name     string
		a        sortable.Float64
		b        sortable.Float64
		expected int
	}{
		{name: "ordinary less", a: 1.5, b: 2.5, expected: -1},
		{name: "ordinary equal", a: 2.5, b: 2.5, expected: 0},
		{name: "nan after inf", a: nan, b: inf, expected: 1},
		{name: "inf before nan", a: inf, b: nan, expected: -1},
		{name: "nan equals nan", a: nan, b: nan, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, tt.expected == 0, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expected < 0, tt.a.LessThan(tt.b))
		})
	}
}

func TestStringAndText(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.String("Apple").LessThan("apple"))
	assert.False(t, sortable.String("Apple").Equals("apple"))

	assert.True(t, sortable.Text("Apple").Equals("apple"))
	assert.True(t, sortable.Text("apple").LessThan("Banana"))
	assert.Equal(t, 0, sortable.Text("HeLLo").Compare("hello"))
}

func TestComparator(t *testing.T) {
	t.Parallel()

	cmp := sortable.Comparator[sortable.Int]()

	assert.Equal(t, -1, cmp(1, 2))
	assert.Equal(t, 1, cmp(2, 1))
	assert.Equal(t, 0, cmp(2, 2))

	text := sortable.Comparator[sortable.Text]()
	assert.Equal(t, 0, text("ABC", "abc"))
}
