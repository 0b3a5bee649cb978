package sorter

import (
	"time"

	"github.com/amp-labs/amp-sort/compare"
	"go.uber.org/atomic"
)

// Instrumented wraps s so each Sort records Prometheus metrics labelled with
// the algorithm name: call and error counts, plus comparison count, length
// and duration histograms for successful sorts. Sorting behaviour is
// unchanged.
func Instrumented[T any](s Sorter[T]) Sorter[T] { //nolint:ireturn
	if _, ok := s.(*instrumented[T]); ok {
		return s
	}

	label := string(s.Algorithm())

	// Touch every series so they show up in scrapes before the first sort.
	sortsTotal.WithLabelValues(label).Add(0)
	sortErrors.WithLabelValues(label).Add(0)

	return &instrumented[T]{inner: s, label: label}
}

type instrumented[T any] struct {
	inner Sorter[T]
	label string
}

func (s *instrumented[T]) Algorithm() Algorithm {
	return s.inner.Algorithm()
}

func (s *instrumented[T]) Properties() Properties {
	return s.inner.Properties()
}

func (s *instrumented[T]) Sort(seq Sequence[T], cmp compare.Func[T]) (Sequence[T], error) {
	sortsTotal.WithLabelValues(s.label).Inc()

	// When the ordering can't be resolved, let the inner sorter produce the error.
	var calls *atomic.Int64
	if ordering, err := resolveOrdering(cmp); err == nil {
		cmp, calls = compare.Counting(ordering)
	}

	start := time.Now()

	out, err := s.inner.Sort(seq, cmp)
	if err != nil {
		sortErrors.WithLabelValues(s.label).Inc()

		return out, err
	}

	sortDuration.WithLabelValues(s.label).Observe(time.Since(start).Seconds())
	sortElements.WithLabelValues(s.label).Observe(float64(out.Len()))

	if calls != nil {
		sortComparisons.WithLabelValues(s.label).Observe(float64(calls.Load()))
	}

	return out, nil
}
