// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, giving them a natural ordering the sorter package
// can discover on its own.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/amp-sort/compare.Comparable] with a
// LessThan method. When a sorter is invoked with a nil ordering relation it
// looks for a natural ordering, and any type implementing Sortable has one:
//
//	seq := sorter.Slice[sortable.Int]{5, 3, 8}
//	_, err := sorter.NewHeap[sortable.Int]().Sort(seq, nil)
//	// seq is now 3, 5, 8
//
// The wrappers [Int], [Byte], [String] and [Float64] exist for callers that
// want to be explicit about it, or need to put primitives behind an interface.
//
// # Custom Sortable Types
//
//	type Ticket struct {
//	    Priority int
//	    ID       string
//	}
//
//	func (t Ticket) Equals(other Ticket) bool { return t == other }
//
//	func (t Ticket) LessThan(other Ticket) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.ID < other.ID
//	}
//
// LessThan must be a strict total order. If two values are neither LessThan
// each other they are treated as equivalent, and unstable strategies (heap,
// quick, shell, selection) may swap them.
package sortable
