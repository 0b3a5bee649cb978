package sortable

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   int
		expected int
	}{
		{name: "int less", result: Compare(Int(1), Int(2)), expected: -1},
		{name: "int equal", result: Compare(Int(2), Int(2)), expected: 0},
		{name: "int greater", result: Compare(Int(3), Int(2)), expected: 1},
		{name: "byte less", result: Compare(Byte('a'), Byte('b')), expected: -1},
		{name: "string greater", result: Compare(String("pear"), String("apple")), expected: 1},
		{name: "float equal", result: Compare(Float64(1.5), Float64(1.5)), expected: 0},
		{name: "NaN before negative infinity", result: Compare(Float64(math.NaN()), Float64(math.Inf(-1))), expected: -1},
		{name: "NaN equals NaN", result: Compare(Float64(math.NaN()), Float64(math.NaN())), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.result)
		})
	}
}

func TestNaturalOrderingIsDiscovered(t *testing.T) {
	t.Parallel()

	f, ok := compare.Natural[String]()
	require.True(t, ok)
	assert.Negative(t, f("a", "b"))

	g, ok := compare.Natural[Float64]()
	require.True(t, ok)
	assert.Negative(t, g(Float64(math.NaN()), 0))
}

func TestFloat64Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, Float64(math.NaN()).Equals(Float64(math.NaN())))
	assert.False(t, Float64(math.NaN()).Equals(0))
	assert.True(t, Float64(0).Equals(0))
}

func TestFunc(t *testing.T) {
	t.Parallel()

	ints := []Int{3, 1, 2}

	f := Func[Int]()
	assert.Negative(t, f(ints[1], ints[2]))
	assert.Positive(t, f(ints[0], ints[2]))
}
