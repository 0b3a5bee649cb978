package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewQuick returns an introspective quick sort: median-of-three pivots,
// three-way partitioning so runs of equal keys cost O(n), insertion sort on
// short ranges, and a heap sort fallback once recursion gets deeper than
// 2·log2(n), which bounds the worst case at O(n log n). Recursion always
// descends into the smaller side, so the stack stays O(log n).
func NewQuick[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Quick,
		props: Properties{
			Worst:   Linearithmic,
			Average: Linearithmic,
			Best:    Linear,
			Space:   Logarithmic,
		},
		run: quickSort[T],
	}
}

// smallRange is the size at or below which divide-and-conquer strategies
// hand off to insertion sort.
const smallRange = 12

func quickSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	n := seq.Len()
	quickSortRange(seq, cmp, 0, n, 2*bitLen(n))
}

func bitLen(n int) int {
	depth := 0
	for ; n > 0; n >>= 1 {
		depth++
	}

	return depth
}

func quickSortRange[T any](seq Sequence[T], cmp compare.Func[T], lo, hi, depth int) {
	for hi-lo > smallRange {
		if depth == 0 {
			heapSortRange(seq, cmp, lo, hi)

			return
		}

		depth--

		lt, gt := partition(seq, cmp, lo, hi)

		if lt-lo < hi-gt {
			quickSortRange(seq, cmp, lo, lt, depth)
			lo = gt
		} else {
			quickSortRange(seq, cmp, gt, hi, depth)
			hi = lt
		}
	}

	insertionSortRange(seq, cmp, lo, hi)
}

// partition splits seq[lo:hi) around a pivot p into
//
//	seq[lo:lt) < p, seq[lt:gt) == p, seq[gt:hi) > p
//
// The middle band is never empty, so both returned halves are strictly
// smaller than the input range.
func partition[T any](seq Sequence[T], cmp compare.Func[T], lo, hi int) (int, int) {
	medianOfThree(seq, cmp, lo, lo+(hi-lo)/2, hi-1)

	pivot := seq.At(lo)
	lt, i, gt := lo, lo+1, hi

	for i < gt {
		c := cmp(seq.At(i), pivot)

		switch {
		case c < 0:
			swap(seq, lt, i)
			lt++
			i++
		case c > 0:
			gt--
			swap(seq, i, gt)
		default:
			i++
		}
	}

	return lt, gt
}

// medianOfThree orders seq[a], seq[b], seq[c] and moves the median to a.
func medianOfThree[T any](seq Sequence[T], cmp compare.Func[T], a, b, c int) {
	if cmp(seq.At(b), seq.At(a)) < 0 {
		swap(seq, a, b)
	}

	if cmp(seq.At(c), seq.At(b)) < 0 {
		swap(seq, b, c)

		if cmp(seq.At(b), seq.At(a)) < 0 {
			swap(seq, a, b)
		}
	}

	swap(seq, a, b)
}
