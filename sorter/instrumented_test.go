package sorter_test

import (
	"testing"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, name, algorithm string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}

		for _, m := range fam.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "algorithm" && label.GetValue() == algorithm {
					return m.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestInstrumented(t *testing.T) { //nolint:paralleltest
	// Selection sort is only instrumented here, so the series are ours alone.
	s := sorter.Instrumented(sorter.NewSelection[int]())
	assert.Same(t, s, sorter.Instrumented(s), "wrapping twice is a no-op")

	assert.Equal(t, sorter.Selection, s.Algorithm())
	assert.Equal(t, sorter.NewSelection[int]().Properties(), s.Properties())

	sortsBefore := counterValue(t, "sorter_sorts_total", "selection")
	errorsBefore := counterValue(t, "sorter_errors_total", "selection")

	seq := sorter.Slice[int]{3, 1, 2}
	out, err := s.Sort(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, sorter.Sequence[int](seq), out)
	assert.Equal(t, sorter.Slice[int]{1, 2, 3}, seq)

	_, err = s.Sort(nil, nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	assert.InDelta(t, sortsBefore+2, counterValue(t, "sorter_sorts_total", "selection"), 0)
	assert.InDelta(t, errorsBefore+1, counterValue(t, "sorter_errors_total", "selection"), 0)

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "sorter_comparisons", "sorter_elements")
	require.NoError(t, err)
	assert.Positive(t, count)
}
