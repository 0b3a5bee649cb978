package sorter

import (
	"reflect"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
)

// checkSequence rejects a nil interface and typed nils of reference kinds
// (e.g. a nil *MySequence). Nil slices are empty sequences, not absent ones.
func checkSequence[T any](seq Sequence[T]) error {
	if seq == nil {
		return errors.InvalidArgument("sequence is nil")
	}

	val := reflect.ValueOf(seq)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if val.IsNil() {
			return errors.InvalidArgumentf("sequence is a nil %s", val.Type())
		}
	}

	return nil
}

// resolveOrdering returns cmp, or the natural ordering of T when cmp is nil.
func resolveOrdering[T any](cmp compare.Func[T]) (compare.Func[T], error) {
	if cmp != nil {
		return cmp, nil
	}

	natural, ok := compare.Natural[T]()
	if !ok {
		return nil, errors.InvalidArgumentf("no ordering relation given and %s has no natural ordering",
			reflect.TypeFor[T]())
	}

	return natural, nil
}

// Check reports whether Sort would accept seq and cmp, without sorting.
// It returns the same errors.ErrInvalidArgument errors Sort would.
func Check[T any](seq Sequence[T], cmp compare.Func[T]) error {
	if err := checkSequence(seq); err != nil {
		return err
	}

	_, err := resolveOrdering(cmp)

	return err
}
