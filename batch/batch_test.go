package batch_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/batch"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	return logger.WithSubsystem(ctx, "batch-test")
}

func randomSlices(count, size int) [][]int {
	rng := rand.New(rand.NewPCG(uint64(count), uint64(size))) //nolint:gosec

	out := make([][]int, count)
	for i := range out {
		n := rng.IntN(size + 1)

		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = rng.IntN(1000) - 500
		}
	}

	return out
}

func TestSortAll(t *testing.T) {
	t.Parallel()

	for _, alg := range sorter.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			inputs := randomSlices(40, 300)
			want := make([][]int, len(inputs))

			for i, in := range inputs {
				want[i] = slices.Clone(in)
				slices.Sort(want[i])
			}

			err := batch.SortAllSlices(testContext(t), sorter.Must[int](alg), inputs, nil, batch.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, want, inputs)
		})
	}
}

func TestSortAllWithRelation(t *testing.T) {
	t.Parallel()

	inputs := [][]string{{"b", "c", "a"}, nil, {"z"}, {"file10", "file2", "file1"}}

	err := batch.SortAllSlices(testContext(t), sorter.NewMerge[string](), inputs, compare.NaturalStrings())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, nil, {"z"}, {"file1", "file2", "file10"}}, inputs)
}

func TestSortAllValidatesEverythingFirst(t *testing.T) {
	t.Parallel()

	first := sorter.Slice[int]{3, 2, 1}
	last := sorter.Slice[int]{9, 8}

	err := batch.SortAll(testContext(t), sorter.NewQuick[int](),
		[]sorter.Sequence[int]{first, last, nil}, nil)

	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "sequence 2")
	assert.Equal(t, sorter.Slice[int]{3, 2, 1}, first)
	assert.Equal(t, sorter.Slice[int]{9, 8}, last)
}

func TestSortAllMissingOrdering(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	seqs := [][]point{{{2, 1}, {1, 2}}, {{0, 0}}}

	err := batch.SortAllSlices(testContext(t), sorter.NewHeap[point](), seqs, nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "sequence 0")
	assert.Contains(t, err.Error(), "sequence 1")
	assert.Equal(t, point{2, 1}, seqs[0][0])
}

func TestSortAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	inputs := [][]int{{3, 2, 1}, {5, 4}}

	err := batch.SortAllSlices(ctx, sorter.NewHeap[int](), inputs, nil, batch.WithWorkers(1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "2 of 2 sequences not sorted")
	assert.Equal(t, [][]int{{3, 2, 1}, {5, 4}}, inputs)
}

func TestSortAllEdgeCases(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	require.NoError(t, batch.SortAll[int](ctx, sorter.NewHeap[int](), nil, nil))

	err := batch.SortAllSlices[int](ctx, nil, [][]int{{1}}, nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestSortAllTracing(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx := testContext(t)

	err := batch.SortAllSlices(ctx, sorter.NewShell[int](), [][]int{{2, 1}, {4, 3}, {6, 5}}, nil,
		batch.WithWorkers(2), batch.WithTracerProvider(provider))
	require.NoError(t, err)

	err = batch.SortAll(ctx, sorter.NewShell[int](), []sorter.Sequence[int]{nil}, nil,
		batch.WithTracerProvider(provider))
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "batch.SortAll", ok.Name())
	assert.Contains(t, ok.Attributes(), attribute.String("sort.algorithm", "shell"))
	assert.Contains(t, ok.Attributes(), attribute.Int("sort.sequences", 3))
	assert.Contains(t, ok.Attributes(), attribute.Int("sort.workers", 2))
	assert.Equal(t, codes.Unset, ok.Status().Code)

	failed := spans[1]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.NotEmpty(t, failed.Events(), "error should be recorded as a span event")
}

func TestDefaultWorkers(t *testing.T) {
	t.Parallel()

	procs := runtime.GOMAXPROCS(0)

	tests := []struct {
		value    string
		expected int
	}{
		{value: "3", expected: 3},
		{value: "0", expected: procs},
		{value: "-2", expected: procs},
		{value: "many", expected: procs},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), batch.WorkersEnvVar, tt.value)
			assert.Equal(t, tt.expected, batch.DefaultWorkers(ctx))
		})
	}
}
