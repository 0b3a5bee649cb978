// Package sortertest is the conformance harness for sorter strategies.
//
// Every strategy, built-in or not, is expected to pass the same battery:
//
//	func TestMySorter(t *testing.T) {
//	    t.Parallel()
//
//	    sortertest.Run(t, sortertest.Suite{
//	        Name:    "mine",
//	        Ints:    func() sorter.Sorter[int] { return NewMine[int]() },
//	        Records: func() sorter.Sorter[sortertest.Record] { return NewMine[sortertest.Record]() },
//	    })
//	}
//
// Run checks the sort postcondition, multiset preservation, identity of the
// returned sequence, idempotence, reversed orderings, that short inputs
// never call the ordering relation, rejection of invalid arguments without
// mutation, and (for strategies reporting Stable) stability. RunAgreement
// checks that several strategies agree on every fixture.
package sortertest

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Record is an element type with no natural ordering. Key is what gets
// sorted; Pos is the element's input position, used to detect reordering of
// equal keys.
type Record struct {
	Key int
	Pos int
}

// ByKey orders records by Key only.
func ByKey() compare.Func[Record] {
	return compare.By(func(r Record) int { return r.Key })
}

// Records turns ints into records, remembering input positions.
func Records(keys []int) []Record {
	out := make([]Record, len(keys))
	for i, k := range keys {
		out[i] = Record{Key: k, Pos: i}
	}

	return out
}

// Suite describes the strategy under test. Records is optional; without it
// the stability and missing-ordering checks are skipped.
type Suite struct {
	Name    string
	Ints    func() sorter.Sorter[int]
	Records func() sorter.Sorter[Record]
}

// ForAlgorithm builds the suite for a registered algorithm.
func ForAlgorithm(alg sorter.Algorithm) Suite {
	return Suite{
		Name:    alg.String(),
		Ints:    func() sorter.Sorter[int] { return sorter.Must[int](alg) },
		Records: func() sorter.Sorter[Record] { return sorter.Must[Record](alg) },
	}
}

// Run executes the conformance battery against suite.
func Run(t *testing.T, suite Suite) {
	t.Helper()

	require.NotNil(t, suite.Ints, "suite %q has no int factory", suite.Name)

	t.Run("fixtures", func(t *testing.T) {
		t.Parallel()

		for _, fx := range Fixtures() {
			t.Run(fx.Name, func(t *testing.T) {
				t.Parallel()

				checkFixture(t, suite.Ints(), fx)
			})
		}
	})

	t.Run("short inputs never compare", func(t *testing.T) {
		t.Parallel()

		checkShortInputs(t, suite.Ints())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		t.Parallel()

		checkInvalidArguments(t, suite.Ints())
	})

	t.Run("examples", func(t *testing.T) {
		t.Parallel()

		checkExamples(t, suite.Ints())
	})

	if suite.Records == nil {
		return
	}

	t.Run("records", func(t *testing.T) {
		t.Parallel()

		checkRecords(t, suite.Records())
	})
}

// RunAgreement sorts every fixture with every suite and requires identical
// results. For records, only the key order is compared: unstable strategies
// may legitimately order equal keys differently.
func RunAgreement(t *testing.T, suites ...Suite) {
	t.Helper()

	require.NotEmpty(t, suites)

	for _, fx := range Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()

			var (
				reference     []int
				referenceKeys []int
			)

			for i, suite := range suites {
				got, err := sorter.SortSlice(suite.Ints(), slices.Clone(fx.Input), nil)
				require.NoError(t, err, suite.Name)

				if i == 0 {
					reference = got
				} else {
					assert.Equal(t, reference, got, "%s disagrees with %s", suite.Name, suites[0].Name)
				}

				if suite.Records == nil {
					continue
				}

				recs, err := sorter.SortSlice(suite.Records(), Records(fx.Input), ByKey())
				require.NoError(t, err, suite.Name)

				keys := keysOf(recs)
				if referenceKeys == nil {
					referenceKeys = keys
				} else {
					assert.Equal(t, referenceKeys, keys, "%s disagrees on key order", suite.Name)
				}
			}
		})
	}
}

func checkFixture(t *testing.T, s sorter.Sorter[int], fx Fixture) {
	t.Helper()

	want := slices.Clone(fx.Input)
	slices.Sort(want)

	seq := sorter.Slice[int](slices.Clone(fx.Input))

	out, err := s.Sort(seq, nil)
	require.NoError(t, err)

	// Same instance back, not a copy.
	got, ok := out.(sorter.Slice[int])
	require.True(t, ok, "Sort returned %T, not the input sequence", out)
	require.Len(t, got, len(seq))

	if len(seq) > 0 {
		assert.Same(t, &seq[0], &got[0])
	}

	// Ordered, and the same multiset as the input.
	assert.True(t, sorter.IsSorted[int](seq, compare.Ordered[int]()))
	assert.Equal(t, want, []int(seq))

	// Sorting sorted data changes nothing.
	snapshot := slices.Clone(seq)
	_, err = s.Sort(seq, compare.Ordered[int]())
	require.NoError(t, err)
	assert.Equal(t, snapshot, seq)

	// A reversed relation yields the reverse order.
	desc := sorter.Slice[int](slices.Clone(fx.Input))
	_, err = s.Sort(desc, compare.Reverse(compare.Ordered[int]()))
	require.NoError(t, err)

	wantDesc := slices.Clone(want)
	slices.Reverse(wantDesc)
	assert.Equal(t, wantDesc, []int(desc))

	// Sequences other than Slice work through the interface alone.
	tracked := newTracking(slices.Clone(fx.Input))
	_, err = s.Sort(tracked, nil)
	require.NoError(t, err)
	assert.Equal(t, want, tracked.items)
}

func checkShortInputs(t *testing.T, s sorter.Sorter[int]) {
	t.Helper()

	for _, input := range [][]int{nil, {}, {42}} {
		cmp, calls := compare.Counting(compare.Ordered[int]())
		tracked := newTracking(input)

		out, err := s.Sort(tracked, cmp)
		require.NoError(t, err)
		assert.Equal(t, sorter.Sequence[int](tracked), out)
		assert.Zero(t, calls.Load(), "ordering relation called for length %d", len(input))
		assert.Zero(t, tracked.writes)
	}
}

func checkInvalidArguments(t *testing.T, s sorter.Sorter[int]) {
	t.Helper()

	out, err := s.Sort(nil, nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Nil(t, out)

	var absent *tracking[int]

	_, err = s.Sort(absent, compare.Ordered[int]())
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	var target *errors.InvalidArgumentError

	require.ErrorAs(t, err, &target)
	assert.NotEmpty(t, target.Message)
}

func checkExamples(t *testing.T, s sorter.Sorter[int]) {
	t.Helper()

	tests := []struct {
		name  string
		input []int
		cmp   compare.Func[int]
		want  []int
	}{
		{name: "natural order", input: []int{5, 3, 8, 1, 9, 2}, want: []int{1, 2, 3, 5, 8, 9}},
		{name: "empty", input: []int{}, want: []int{}},
		{name: "singleton", input: []int{7}, want: []int{7}},
		{name: "duplicates", input: []int{4, 4, 4}, want: []int{4, 4, 4}},
		{
			name:  "descending relation",
			input: []int{3, 1, 2},
			cmp:   compare.Reverse(compare.Ordered[int]()),
			want:  []int{3, 2, 1},
		},
	}

	for _, tt := range tests {
		got, err := sorter.SortSlice(s, tt.input, tt.cmp)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func checkRecords(t *testing.T, s sorter.Sorter[Record]) {
	t.Helper()

	stable := s.Properties().Stable

	// Record has no natural ordering: a nil relation must be rejected
	// before anything is written.
	input := Records([]int{3, 1, 2})
	tracked := newTracking(slices.Clone(input))

	_, err := s.Sort(tracked, nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Zero(t, tracked.writes)
	assert.Equal(t, input, tracked.items)

	for _, fx := range Fixtures() {
		recs, err := sorter.SortSlice(s, Records(fx.Input), ByKey())
		require.NoError(t, err, fx.Name)

		wantKeys := slices.Clone(fx.Input)
		slices.Sort(wantKeys)

		if len(wantKeys) == 0 {
			assert.Empty(t, recs, fx.Name)

			continue
		}

		assert.Equal(t, wantKeys, keysOf(recs), fx.Name)

		// Every input position appears exactly once.
		positions := make([]int, len(recs))
		for i, r := range recs {
			positions[i] = r.Pos
		}

		slices.Sort(positions)

		for i, p := range positions {
			require.Equal(t, i, p, "%s: record lost or duplicated", fx.Name)
		}

		if !stable {
			continue
		}

		for i := 1; i < len(recs); i++ {
			if recs[i].Key == recs[i-1].Key {
				assert.Less(t, recs[i-1].Pos, recs[i].Pos,
					"%s: %s claims stability but reordered equal keys at %d", fx.Name, s.Algorithm(), i)
			}
		}
	}
}

func keysOf(recs []Record) []int {
	keys := make([]int, len(recs))
	for i, r := range recs {
		keys[i] = r.Key
	}

	return keys
}

// tracking is a Sequence that is not a Slice and counts writes.
type tracking[T any] struct {
	items  []T
	writes int
}

func newTracking[T any](items []T) *tracking[T] {
	return &tracking[T]{items: items}
}

func (s *tracking[T]) Len() int {
	return len(s.items)
}

func (s *tracking[T]) At(i int) T {
	return s.items[i]
}

func (s *tracking[T]) Set(i int, v T) {
	s.writes++
	s.items[i] = v
}
