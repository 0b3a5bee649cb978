// Package sorter is a pluggable in-place sorting framework.
//
// Every strategy implements the same contract, [Sorter]: given a mutable
// [Sequence] and an ordering relation, rearrange the sequence in place so it
// is non-decreasing, and return the very same sequence so calls can be
// chained. Strategies differ only in their trade-offs, which they report
// through [Properties]:
//
//	Algorithm   Worst       Average     Best        Space     Stable  Adaptive
//	heap        n log n     n log n     n log n     1         no      no
//	quick       n log n     n log n     n           log n     no      no
//	merge       n log n     n log n     n           n         yes     yes
//	insertion   n²          n²          n           1         yes     yes
//	shell       n^(4/3)     n^(4/3)     n log n     1         no      yes
//	selection   n²          n²          n²          1         no      no
//	bubble      n²          n²          n           1         yes     yes
//
// # Usage
//
//	s := sorter.NewHeap[int]()
//	seq := sorter.Slice[int]{5, 3, 8, 1, 9, 2}
//	if _, err := s.Sort(seq, nil); err != nil {
//	    return err
//	}
//	// seq is now [1 2 3 5 8 9]
//
// A nil ordering relation selects the natural ordering of the element type
// (see [github.com/amp-labs/amp-sort/compare.Natural]). If the type has none,
// Sort fails with [github.com/amp-labs/amp-sort/errors.ErrInvalidArgument]
// before touching the sequence. The same error is returned for a nil
// sequence.
//
// # Concurrency
//
// A sort runs synchronously to completion on the calling goroutine. Sorters
// hold no mutable state, so one Sorter value may sort many independent
// sequences at once; concurrent access to a single sequence during a sort is
// the caller's problem. See package batch for sorting many sequences in
// parallel.
//
// Strategies never log or otherwise produce side effects beyond mutating the
// sequence. Wrap a Sorter with [Instrumented] to get Prometheus metrics.
package sorter
