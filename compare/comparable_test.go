package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testNumber int

func (n testNumber) Equals(other testNumber) bool {
	return int(n) == int(other)
}

type testStruct struct {
	ID   int
	Name string
}

func (t testStruct) Equals(other testStruct) bool {
	return t.ID == other.ID && t.Name == other.Name
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	t.Run("with testNumber", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equals(testNumber(42), testNumber(42)))
		assert.False(t, Equals(testNumber(42), testNumber(24)))
	})

	t.Run("with testStruct", func(t *testing.T) {
		t.Parallel()

		a := testStruct{ID: 1, Name: "Alice"}

		assert.True(t, Equals(a, testStruct{ID: 1, Name: "Alice"}))
		assert.False(t, Equals(a, testStruct{ID: 2, Name: "Bob"}))
	})
}
