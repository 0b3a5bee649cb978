package sortable

import "math"

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

// String orders by byte-wise comparison, like the < operator on strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Float64 is a sortable float64. NaN is treated as smaller than every other
// value and equal to itself, so a slice with NaNs still has a total order.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

func (f Float64) Equals(other Float64) bool {
	if f.isNaN() || other.isNaN() {
		return f.isNaN() && other.isNaN()
	}

	return float64(f) == float64(other)
}

func (f Float64) LessThan(other Float64) bool {
	if f.isNaN() {
		return !other.isNaN()
	}

	return float64(f) < float64(other)
}

func (f Float64) isNaN() bool {
	return math.IsNaN(float64(f))
}
