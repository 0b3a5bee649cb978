package compare

import (
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type celsius float32

type version struct {
	major, minor int
}

func (v version) Equals(other version) bool {
	return v == other
}

func (v version) LessThan(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}

	return v.minor < other.minor
}

type opaque struct {
	n int
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestNatural(t *testing.T) {
	t.Parallel()

	t.Run("builtin int", func(t *testing.T) {
		t.Parallel()

		f, ok := Natural[int]()
		require.True(t, ok)
		assert.Equal(t, -1, sign(f(1, 2)))
		assert.Equal(t, 0, sign(f(2, 2)))
		assert.Equal(t, 1, sign(f(3, 2)))
	})

	t.Run("builtin string", func(t *testing.T) {
		t.Parallel()

		f, ok := Natural[string]()
		require.True(t, ok)
		assert.Negative(t, f("apple", "banana"))
	})

	t.Run("floats put NaN first", func(t *testing.T) {
		t.Parallel()

		f, ok := Natural[float64]()
		require.True(t, ok)
		assert.Negative(t, f(math.NaN(), math.Inf(-1)))
		assert.Zero(t, f(math.NaN(), math.NaN()))
	})

	t.Run("named type over an ordered kind", func(t *testing.T) {
		t.Parallel()

		f, ok := Natural[celsius]()
		require.True(t, ok)
		assert.Negative(t, f(-4.5, 3))
		assert.Positive(t, f(100, 3))

		u, ok := Natural[uint8]()
		require.True(t, ok)
		assert.Positive(t, u(200, 7))
	})

	t.Run("Compare method", func(t *testing.T) {
		t.Parallel()

		now := time.Now()

		f, ok := Natural[time.Time]()
		require.True(t, ok)
		assert.Negative(t, f(now, now.Add(time.Second)))
		assert.Zero(t, f(now, now))
	})

	t.Run("LessThan method", func(t *testing.T) {
		t.Parallel()

		f, ok := Natural[version]()
		require.True(t, ok)
		assert.Negative(t, f(version{1, 2}, version{1, 10}))
		assert.Positive(t, f(version{2, 0}, version{1, 10}))
		assert.Zero(t, f(version{3, 3}, version{3, 3}))
	})

	t.Run("unordered types", func(t *testing.T) {
		t.Parallel()

		_, ok := Natural[opaque]()
		assert.False(t, ok)

		_, ok = Natural[[]int]()
		assert.False(t, ok)

		_, ok = Natural[any]()
		assert.False(t, ok)

		assert.Panics(t, func() { MustNatural[opaque]() })
	})
}

func TestDerivedOrderings(t *testing.T) {
	t.Parallel()

	asc := Ordered[int]()

	t.Run("reverse", func(t *testing.T) {
		t.Parallel()

		desc := Reverse(asc)
		assert.Positive(t, desc(1, 2))
		assert.True(t, desc.Less(5, 1))
	})

	t.Run("from less", func(t *testing.T) {
		t.Parallel()

		f := FromLess(func(a, b int) bool { return a < b })
		assert.Negative(t, f(1, 2))
		assert.Zero(t, f(2, 2))
		assert.Positive(t, f(3, 2))
		assert.True(t, Equivalent(f, 4, 4))
	})

	t.Run("by key then tie-break", func(t *testing.T) {
		t.Parallel()

		type person struct {
			name string
			age  int
		}

		f := Then(
			By(func(p person) int { return p.age }),
			By(func(p person) string { return p.name }),
		)

		assert.Negative(t, f(person{"zed", 30}, person{"amy", 31}))
		assert.Negative(t, f(person{"amy", 30}, person{"zed", 30}))
		assert.Zero(t, f(person{"amy", 30}, person{"amy", 30}))
	})
}

func TestTextOrderings(t *testing.T) {
	t.Parallel()

	t.Run("natural strings", func(t *testing.T) {
		t.Parallel()

		f := NaturalStrings()
		assert.Negative(t, f("file2", "file10"))
		assert.Positive(t, f("file10", "file2"))
		assert.Negative(t, Ordered[string]()("file10", "file2"))
	})

	t.Run("collation follows the locale", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, Collated(language.German)("ä", "z"))
		assert.Positive(t, Collated(language.Swedish)("ä", "z"))
	})

	t.Run("parse collation", func(t *testing.T) {
		t.Parallel()

		f, err := ParseCollation("de", true)
		require.NoError(t, err)
		assert.Zero(t, f("Apfel", "apfel"))

		f, err = ParseCollation("de", false)
		require.NoError(t, err)
		assert.NotZero(t, f("Apfel", "apfel"))

		_, err = ParseCollation("not a tag!!", false)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}

func TestCounting(t *testing.T) {
	t.Parallel()

	f, calls := Counting(Ordered[int]())

	assert.Zero(t, calls.Load())

	f(1, 2)
	f(2, 1)

	assert.Equal(t, int64(2), calls.Load())
}
