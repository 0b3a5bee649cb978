package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewSelection returns selection sort. Always n²/2 comparisons, but at most
// n-1 swaps, which matters when writes are expensive. Not stable.
func NewSelection[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Selection,
		props: Properties{
			Worst:   Quadratic,
			Average: Quadratic,
			Best:    Quadratic,
			Space:   Constant,
		},
		run: selectionSort[T],
	}
}

func selectionSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	n := seq.Len()

	for i := 0; i < n-1; i++ {
		smallest := i
		for j := i + 1; j < n; j++ {
			if cmp(seq.At(j), seq.At(smallest)) < 0 {
				smallest = j
			}
		}

		if smallest != i {
			swap(seq, i, smallest)
		}
	}
}
