package sorter

import (
	"strings"

	"github.com/amp-labs/amp-sort/errors"
)

// Algorithm names a sorting strategy.
type Algorithm string

const (
	Heap      Algorithm = "heap"
	Quick     Algorithm = "quick"
	Merge     Algorithm = "merge"
	Insertion Algorithm = "insertion"
	Shell     Algorithm = "shell"
	Selection Algorithm = "selection"
	Bubble    Algorithm = "bubble"
)

// DefaultAlgorithm is used when nothing else is configured.
const DefaultAlgorithm = Heap

// Algorithms lists every registered strategy, fastest family first.
func Algorithms() []Algorithm {
	return []Algorithm{Heap, Quick, Merge, Shell, Insertion, Selection, Bubble}
}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm resolves a case-insensitive algorithm name. Surrounding
// whitespace and a trailing "sort" ("HeapSort", "quick_sort") are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.TrimSuffix(norm, "sort")
	norm = strings.TrimRight(norm, "_- ")

	for _, a := range Algorithms() {
		if string(a) == norm {
			return a, nil
		}
	}

	return "", errors.InvalidArgumentf("unknown sorting algorithm %q", name)
}

// New returns the strategy for alg.
func New[T any](alg Algorithm) (Sorter[T], error) { //nolint:ireturn
	switch alg {
	case Heap:
		return NewHeap[T](), nil
	case Quick:
		return NewQuick[T](), nil
	case Merge:
		return NewMerge[T](), nil
	case Insertion:
		return NewInsertion[T](), nil
	case Shell:
		return NewShell[T](), nil
	case Selection:
		return NewSelection[T](), nil
	case Bubble:
		return NewBubble[T](), nil
	default:
		return nil, errors.InvalidArgumentf("unknown sorting algorithm %q", string(alg))
	}
}

// Must is New for algorithms known at compile time; it panics on an unknown one.
func Must[T any](alg Algorithm) Sorter[T] { //nolint:ireturn
	s, err := New[T](alg)
	if err != nil {
		panic(err)
	}

	return s
}

// All returns one Sorter per registered algorithm, in Algorithms order.
func All[T any]() []Sorter[T] {
	algs := Algorithms()
	out := make([]Sorter[T], 0, len(algs))

	for _, a := range algs {
		out = append(out, Must[T](a))
	}

	return out
}
