// Package sortable provides the Sortable interface and wrapper types for primitives that implement it.
package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

// Sortable is the natural-ordering contract: equality plus a strict
// less-than. LessThan must describe a total order consistent with Equals.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the three-way ordering induced by LessThan.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Func returns Compare as a compare.Func, ready to hand to a sorter.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}
