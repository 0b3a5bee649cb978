package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewMerge returns a stable top-down merge sort. It allocates one buffer the
// size of the sequence per call, sorts short ranges by insertion, and skips
// the merge when two halves are already in order, so sorted input costs O(n).
func NewMerge[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Merge,
		props: Properties{
			Worst:    Linearithmic,
			Average:  Linearithmic,
			Best:     Linear,
			Space:    Linear,
			Stable:   true,
			Adaptive: true,
		},
		run: mergeSort[T],
	}
}

func mergeSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	n := seq.Len()
	buf := make([]T, n)
	mergeSortRange(seq, cmp, buf, 0, n)
}

func mergeSortRange[T any](seq Sequence[T], cmp compare.Func[T], buf []T, lo, hi int) {
	if hi-lo <= smallRange {
		insertionSortRange(seq, cmp, lo, hi)

		return
	}

	mid := lo + (hi-lo)/2
	mergeSortRange(seq, cmp, buf, lo, mid)
	mergeSortRange(seq, cmp, buf, mid, hi)

	if cmp(seq.At(mid-1), seq.At(mid)) <= 0 {
		return
	}

	merge(seq, cmp, buf, lo, mid, hi)
}

// merge combines the sorted runs seq[lo:mid) and seq[mid:hi). On ties the
// left run wins, which is what makes the sort stable.
func merge[T any](seq Sequence[T], cmp compare.Func[T], buf []T, lo, mid, hi int) {
	for i := lo; i < hi; i++ {
		buf[i] = seq.At(i)
	}

	i, j := lo, mid

	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			seq.Set(k, buf[j])
			j++
		case j >= hi:
			seq.Set(k, buf[i])
			i++
		case cmp(buf[j], buf[i]) < 0:
			seq.Set(k, buf[j])
			j++
		default:
			seq.Set(k, buf[i])
			i++
		}
	}
}
