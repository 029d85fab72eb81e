package cast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Func converts a raw string value into a typed value. Casts are first-class:
// they are passed to the config resolvers and applied to values coming from
// the environment, a settings file, or a string default.
type Func[T any] func(string) (T, error)

// Truthy and falsy token tables. The sets are a fixed contract, matched
// case-insensitively; changing them is a breaking change for every caller
// storing booleans as text.
var (
	trueValues  = map[string]struct{}{"y": {}, "yes": {}, "t": {}, "true": {}, "on": {}, "1": {}}
	falseValues = map[string]struct{}{"n": {}, "no": {}, "f": {}, "false": {}, "off": {}, "0": {}}
)

// String is the identity cast: the raw value is returned unchanged.
func String(value string) (string, error) {
	return value, nil
}

// Bool converts a truthy or falsy token into a bool. The empty string maps to
// false so that `KEY=` lines behave like an unset flag rather than an error.
// Any other unrecognized token fails with ErrInvalidCast.
func Bool(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	switch lower := strings.ToLower(value); {
	case containsToken(trueValues, lower):
		return true, nil
	case containsToken(falseValues, lower):
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid truth value %q", ErrInvalidCast, value)
	}
}

func containsToken(set map[string]struct{}, token string) bool {
	_, ok := set[token]
	return ok
}

// Int converts a base-10 integer string.
func Int(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer %q", ErrInvalidCast, value)
	}
	return n, nil
}

// Int64 converts a base-10 64-bit integer string.
func Int64(value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer %q", ErrInvalidCast, value)
	}
	return n, nil
}

// Float64 converts a decimal floating-point string.
func Float64(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid float %q", ErrInvalidCast, value)
	}
	return f, nil
}

// Duration converts a Go duration string such as "1h30m" or "250ms".
func Duration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q", ErrInvalidCast, value)
	}
	return d, nil
}
