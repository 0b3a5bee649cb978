package sorter

// Sequence is a mutable, indexable, finite container. Positions are 0-based.
// Implementations need no synchronization: a sequence is only ever touched by
// the goroutine that called Sort.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

// Slice adapts a Go slice to Sequence. A nil Slice is an empty sequence.
type Slice[T any] []T

// Compile-time check that Slice implements Sequence.
var _ Sequence[int] = Slice[int](nil)

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) T {
	return s[i]
}

func (s Slice[T]) Set(i int, v T) {
	s[i] = v
}

func swap[T any](seq Sequence[T], i, j int) {
	a, b := seq.At(i), seq.At(j)
	seq.Set(i, b)
	seq.Set(j, a)
}
