package sorter

import "github.com/amp-labs/amp-sort/compare"

// NewHeap returns heap sort: build a max-heap over the whole sequence, then
// repeatedly swap the root with the last unsorted position and sift down.
// O(n log n) in every case, O(1) extra space. Not stable, not adaptive.
func NewHeap[T any]() Sorter[T] {
	return strategy[T]{
		algorithm: Heap,
		props: Properties{
			Worst:   Linearithmic,
			Average: Linearithmic,
			Best:    Linearithmic,
			Space:   Constant,
		},
		run: heapSort[T],
	}
}

func heapSort[T any](seq Sequence[T], cmp compare.Func[T]) {
	heapSortRange(seq, cmp, 0, seq.Len())
}

// heapSortRange sorts seq[lo:hi). The heap is rooted at lo; node i (relative
// to lo) has children 2i+1 and 2i+2.
func heapSortRange[T any](seq Sequence[T], cmp compare.Func[T], lo, hi int) {
	n := hi - lo

	buildHeap(seq, cmp, lo, n)

	for end := n - 1; end > 0; end-- {
		swap(seq, lo, lo+end)
		siftDown(seq, cmp, lo, 0, end)
	}
}

// buildHeap arranges the n elements starting at first into a max-heap,
// bottom-up, in O(n).
func buildHeap[T any](seq Sequence[T], cmp compare.Func[T], first, n int) {
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(seq, cmp, first, i, n)
	}
}

// siftDown restores the max-heap property below root, within the first n
// nodes of the heap at offset first.
func siftDown[T any](seq Sequence[T], cmp compare.Func[T], first, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}

		if child+1 < n && cmp(seq.At(first+child), seq.At(first+child+1)) < 0 {
			child++
		}

		if cmp(seq.At(first+root), seq.At(first+child)) >= 0 {
			return
		}

		swap(seq, first+root, first+child)
		root = child
	}
}
