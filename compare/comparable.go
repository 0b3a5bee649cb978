// Package compare provides ordering relations for the sorting framework.
//
// An ordering relation is a Func: a three-way comparison returning a negative
// number when a sorts before b, zero when they are equivalent, and a positive
// number when a sorts after b. A Func must describe a consistent total order
// (antisymmetric, transitive, total); sorting with anything else produces an
// unspecified permutation.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equivalent reports whether a and b compare as equal under f.
func Equivalent[T any](f Func[T], a, b T) bool {
	return f(a, b) == 0
}
