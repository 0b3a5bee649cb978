package compare

import (
	"cmp"
	"reflect"
)

// selfComparer is satisfied by types that know how to order themselves
// three-way, like time.Time or big.Int-style values.
type selfComparer[T any] interface {
	Compare(other T) int
}

// selfSorter mirrors sortable.Sortable without importing it.
type selfSorter[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Natural returns the natural ordering of T, if it has one. In order of
// preference:
//
//  1. T has a Compare(T) int method;
//  2. T has Equals(T) bool and LessThan(T) bool methods (see package sortable);
//  3. T's underlying kind is an integer, float or string kind.
//
// The second result is false when none of these apply (structs without
// methods, interfaces, slices, maps and so on).
func Natural[T any]() (Func[T], bool) {
	var zero T

	// Fast paths for the builtin types that get sorted most.
	switch any(zero).(type) {
	case int:
		return any(Func[int](cmp.Compare[int])).(Func[T]), true //nolint:forcetypeassert
	case int64:
		return any(Func[int64](cmp.Compare[int64])).(Func[T]), true //nolint:forcetypeassert
	case float64:
		return any(Func[float64](cmp.Compare[float64])).(Func[T]), true //nolint:forcetypeassert
	case string:
		return any(Func[string](cmp.Compare[string])).(Func[T]), true //nolint:forcetypeassert
	}

	if _, ok := any(zero).(selfComparer[T]); ok {
		return func(a, b T) int {
			return any(a).(selfComparer[T]).Compare(b) //nolint:forcetypeassert
		}, true
	}

	if _, ok := any(zero).(selfSorter[T]); ok {
		return func(a, b T) int {
			sa := any(a).(selfSorter[T]) //nolint:forcetypeassert

			switch {
			case sa.LessThan(b):
				return -1
			case any(b).(selfSorter[T]).LessThan(a): //nolint:forcetypeassert
				return 1
			default:
				return 0
			}
		}, true
	}

	return byKind[T](reflect.TypeFor[T]())
}

// MustNatural is Natural for types known to be ordered; it panics otherwise.
func MustNatural[T any]() Func[T] {
	f, ok := Natural[T]()
	if !ok {
		panic("compare: " + reflect.TypeFor[T]().String() + " has no natural ordering")
	}

	return f
}

// byKind covers named types whose underlying type is ordered, e.g.
// `type Celsius float32`.
func byKind[T any](typ reflect.Type) (Func[T], bool) {
	if typ == nil {
		return nil, false
	}

	switch typ.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	}

	return nil, false
}
