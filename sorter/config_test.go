package sorter_test

import (
	"os"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected sorter.Algorithm
		wantErr  bool
	}{
		{input: "heap", expected: sorter.Heap},
		{input: "  Quick ", expected: sorter.Quick},
		{input: "MergeSort", expected: sorter.Merge},
		{input: "insertion_sort", expected: sorter.Insertion},
		{input: "shell-sort", expected: sorter.Shell},
		{input: "SELECTION", expected: sorter.Selection},
		{input: "bubble", expected: sorter.Bubble},
		{input: "bogo", wantErr: true},
		{input: "sort", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			alg, err := sorter.ParseAlgorithm(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, alg := range sorter.Algorithms() {
		s, err := sorter.New[int](alg)
		require.NoError(t, err)
		assert.Equal(t, alg, s.Algorithm())
	}

	_, err := sorter.New[int]("timsort")
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	assert.Panics(t, func() { sorter.Must[int]("timsort") })
	assert.Len(t, sorter.All[int](), len(sorter.Algorithms()))
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("explicitly empty is not a name", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), sorter.AlgorithmEnvVar, "")

		_, err := sorter.FromEnv[int](ctx)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})

	t.Run("reads the configured algorithm", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), sorter.AlgorithmEnvVar, "merge")

		s, err := sorter.FromEnv[string](ctx)
		require.NoError(t, err)
		assert.Equal(t, sorter.Merge, s.Algorithm())
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), sorter.AlgorithmEnvVar, "bogo")

		_, err := sorter.FromEnv[int](ctx)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}

func TestFromEnvDefault(t *testing.T) { //nolint:paralleltest
	// t.Setenv restores the original value (or absence) on cleanup.
	t.Setenv(sorter.AlgorithmEnvVar, "")
	require.NoError(t, os.Unsetenv(sorter.AlgorithmEnvVar))

	alg, err := sorter.ConfiguredAlgorithm(t.Context())
	require.NoError(t, err)
	assert.Equal(t, sorter.DefaultAlgorithm, alg)

	s, err := sorter.FromEnv[int](t.Context())
	require.NoError(t, err)
	assert.Equal(t, sorter.Heap, s.Algorithm())
}
