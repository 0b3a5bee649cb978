package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewInsertion returns a stable, adaptive insertion sort. Quadratic in
// general but linear on sorted input, and the fastest choice for short
// sequences.
func NewInsertion[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Insertion,
		props: Properties{
			Worst:    Quadratic,
			Average:  Quadratic,
			Best:     Linear,
			Space:    Constant,
			Stable:   true,
			Adaptive: true,
		},
		run: func(seq Sequence[T], cmp compare.Func[T]) {
			insertionSortRange(seq, cmp, 0, seq.Len())
		},
	}
}

func insertionSortRange[T any](seq Sequence[T], cmp compare.Func[T], lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		v := seq.At(i)
		j := i

		for ; j > lo && cmp(v, seq.At(j-1)) < 0; j-- {
			seq.Set(j, seq.At(j-1))
		}

		if j != i {
			seq.Set(j, v)
		}
	}
}
