package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewBubble returns bubble sort. Each pass stops at the last swap of the
// previous one, and a pass without swaps ends the sort, so sorted input
// takes a single pass.
func NewBubble[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Bubble,
		props: Properties{
			Worst:    Quadratic,
			Average:  Quadratic,
			Best:     Linear,
			Space:    Constant,
			Stable:   true,
			Adaptive: true,
		},
		run: bubbleSort[T],
	}
}

func bubbleSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	for end := seq.Len(); end > 1; {
		lastSwap := 0

		for i := 1; i < end; i++ {
			if cmp(seq.At(i), seq.At(i-1)) < 0 {
				swap(seq, i, i-1)
				lastSwap = i
			}
		}

		end = lastSwap
	}
}
