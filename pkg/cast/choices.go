package cast

import "fmt"

// Pair is a (value, label) choice in the style of Django choice tuples. Only
// the value half participates in validation; the label is caller-side display
// data.
type Pair[T comparable] struct {
	Value T
	Label string
}

// Choices builds a cast that accepts the raw string only if it is one of the
// valid values. Comparison is exact: no case folding, no trimming.
//
//	conn, err := config.Resolve(cfg, "CONNECTION_TYPE", cast.Choices("eth", "usb", "bluetooth"))
func Choices(valid ...string) Func[string] {
	return ChoicesOf(String, valid...)
}

// ChoicesOf wraps another cast and validates the cast result against the
// valid set. A cast failure is surfaced as-is; a value outside the set fails
// with ErrInvalidChoice listing every valid value.
func ChoicesOf[T comparable](fn Func[T], valid ...T) Func[T] {
	return func(value string) (T, error) {
		cast, err := fn(value)
		if err != nil {
			var zero T
			return zero, err
		}
		for _, v := range valid {
			if cast == v {
				return cast, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("%w: %q; valid values are %v", ErrInvalidChoice, value, valid)
	}
}

// ChoicePairs is ChoicesOf for (value, label) pairs, validating against the
// value half only.
func ChoicePairs[T comparable](fn Func[T], pairs []Pair[T]) Func[T] {
	valid := make([]T, len(pairs))
	for i, p := range pairs {
		valid[i] = p.Value
	}
	return ChoicesOf(fn, valid...)
}
