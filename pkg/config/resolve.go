package config

import (
	"errors"

	"github.com/confkit/confkit/pkg/cast"
)

// Resolve looks up option with environment-over-repository precedence and
// applies fn to the raw value. Methods cannot be generic, so the typed
// resolvers live as package-level functions taking the coordinator first.
func Resolve[T any](c *Config, option string, fn cast.Func[T]) (T, error) {
	raw, err := c.Get(option)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(raw)
}

// ResolveDefault is Resolve with a typed fallback: when option is absent
// from both the environment and the repository, def is returned unchanged.
// A typed default is assumed already cast, so fn is only applied to raw
// string values coming from a source.
func ResolveDefault[T any](c *Config, option string, def T, fn cast.Func[T]) (T, error) {
	raw, err := c.Get(option)
	if errors.Is(err, ErrUndefinedValue) {
		return def, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(raw)
}

// ResolveStringDefault is Resolve with a raw string fallback: when option is
// absent, def flows through the same cast as environment and file values, so
// an invalid default fails exactly like an invalid stored value would.
func ResolveStringDefault[T any](c *Config, option string, def string, fn cast.Func[T]) (T, error) {
	raw, err := c.Get(option)
	switch {
	case errors.Is(err, ErrUndefinedValue):
		raw = def
	case err != nil:
		var zero T
		return zero, err
	}
	return fn(raw)
}
