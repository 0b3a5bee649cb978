package sorter

import "github.com/amp-labs/amp-sort/compare"

// ciuraGaps is Ciura's empirically best gap sequence. Longer sequences
// extend it geometrically by a factor of 2.25.
var ciuraGaps = []int{1, 4, 10, 23, 57, 132, 301, 701, 1750} //nolint:gochecknoglobals

// NewShell returns shell sort over Ciura's gap sequence: a series of gapped
// insertion sorts ending in a plain one. In place and adaptive, but the long
// range moves make it unstable.
func NewShell[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Shell,
		props: Properties{
			Worst:    FourThirds,
			Average:  FourThirds,
			Best:     Linearithmic,
			Space:    Constant,
			Adaptive: true,
		},
		run: shellSort[T],
	}
}

func shellSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	n := seq.Len()
	gaps := shellGaps(n)

	for g := len(gaps) - 1; g >= 0; g-- {
		gap := gaps[g]

		for i := gap; i < n; i++ {
			v := seq.At(i)
			j := i

			for ; j >= gap && cmp(v, seq.At(j-gap)) < 0; j -= gap {
				seq.Set(j, seq.At(j-gap))
			}

			if j != i {
				seq.Set(j, v)
			}
		}
	}
}

// shellGaps returns the ascending gaps smaller than n.
func shellGaps(n int) []int {
	gaps := make([]int, 0, len(ciuraGaps))

	for _, g := range ciuraGaps {
		if g >= n {
			return gaps
		}

		gaps = append(gaps, g)
	}

	for next := ciuraGaps[len(ciuraGaps)-1] * 9 / 4; next < n; next = next * 9 / 4 {
		gaps = append(gaps, next)
	}

	return gaps
}
