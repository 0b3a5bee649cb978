package sorter

import (
	"cmp"

	"github.com/amp-labs/amp-sort/compare"
)

// Sorter is the contract every strategy satisfies.
type Sorter[T any] interface {
	// Sort rearranges seq in place so that it is non-decreasing under cmp
	// and returns seq itself. A nil cmp selects the natural ordering of T.
	//
	// Sequences of length 0 or 1 are returned as-is without calling cmp.
	// An absent seq, or a nil cmp when T has no natural ordering, fails with
	// errors.ErrInvalidArgument and leaves seq untouched.
	Sort(seq Sequence[T], cmp compare.Func[T]) (Sequence[T], error)

	// Algorithm names the strategy.
	Algorithm() Algorithm

	// Properties describes the strategy's complexity and guarantees.
	Properties() Properties
}

// Complexity is a big-O bound in terms of the sequence length n.
type Complexity string

const (
	Constant     Complexity = "O(1)"
	Logarithmic  Complexity = "O(log n)"
	Linear       Complexity = "O(n)"
	Linearithmic Complexity = "O(n log n)"
	FourThirds   Complexity = "O(n^(4/3))"
	Quadratic    Complexity = "O(n²)"
)

// Properties documents the trade-offs of a strategy.
type Properties struct {
	Worst   Complexity `json:"worst"   yaml:"worst"`
	Average Complexity `json:"average" yaml:"average"`
	Best    Complexity `json:"best"    yaml:"best"`

	// Space is auxiliary space beyond the sequence itself.
	Space Complexity `json:"space" yaml:"space"`

	// Stable strategies keep equivalent elements in their input order.
	Stable bool `json:"stable" yaml:"stable"`

	// Adaptive strategies do less work on partially sorted input.
	Adaptive bool `json:"adaptive" yaml:"adaptive"`
}

// strategy is the one Sorter implementation; algorithms differ only in run.
type strategy[T any] struct {
	algorithm Algorithm
	props     Properties
	run       func(seq Sequence[T], cmp compare.Func[T])
}

func (s strategy[T]) Algorithm() Algorithm {
	return s.algorithm
}

func (s strategy[T]) Properties() Properties {
	return s.props
}

func (s strategy[T]) Sort(seq Sequence[T], cmp compare.Func[T]) (Sequence[T], error) {
	if err := checkSequence(seq); err != nil {
		return nil, err
	}

	ordering, err := resolveOrdering(cmp)
	if err != nil {
		return nil, err
	}

	if seq.Len() < 2 {
		return seq, nil
	}

	s.run(seq, ordering)

	return seq, nil
}

func (s strategy[T]) String() string {
	return string(s.algorithm)
}

// SortSlice sorts x in place with s and returns it.
func SortSlice[T any](s Sorter[T], x []T, cmp compare.Func[T]) ([]T, error) {
	if _, err := s.Sort(Slice[T](x), cmp); err != nil {
		return nil, err
	}

	return x, nil
}

// SortOrdered sorts x in place, ascending, with s.
func SortOrdered[T cmp.Ordered](s Sorter[T], x []T) ([]T, error) {
	return SortSlice(s, x, compare.Ordered[T]())
}

// IsSorted reports whether seq is non-decreasing under cmp.
func IsSorted[T any](seq Sequence[T], cmp compare.Func[T]) bool {
	for i := seq.Len() - 1; i > 0; i-- {
		if cmp(seq.At(i), seq.At(i-1)) < 0 {
			return false
		}
	}

	return true
}
