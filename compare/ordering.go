package compare

import "cmp"

// Func is a three-way ordering relation over T.
type Func[T any] func(a, b T) int

// Less reports whether a sorts strictly before b.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// Ordered returns the natural ordering of a cmp.Ordered type. NaNs sort
// before every other float value.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse inverts f, turning an ascending relation into a descending one.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess adapts a strict less-than predicate into a Func.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// By orders values by an extracted key.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then chains relations: ties under first are broken by each of next, in order.
func Then[T any](first Func[T], next ...Func[T]) Func[T] {
	return func(a, b T) int {
		if c := first(a, b); c != 0 {
			return c
		}

		for _, f := range next {
			if c := f(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}
