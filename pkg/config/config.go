package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/confkit/confkit/pkg/cast"
	"github.com/confkit/confkit/pkg/repository"
)

// Config resolves settings with a fixed precedence: process environment
// first, then the backing repository, then whatever default the caller
// supplied. It owns exactly one repository and holds no other state beyond
// the struct-binding cache.
type Config struct {
	repo repository.Repository

	bindMu    sync.Mutex
	bindCache map[string]any
}

// New creates a coordinator over the given repository. A nil repository is
// treated as the empty one, leaving the process environment as the only
// source.
func New(repo repository.Repository) *Config {
	if repo == nil {
		repo = repository.Empty{}
	}
	return &Config{
		repo:      repo,
		bindCache: make(map[string]any),
	}
}

// Get returns the raw string value for option, checking the process
// environment before the repository. A key present in the environment wins
// even when the backing file defines it too, and an empty environment value
// still counts as present.
func (c *Config) Get(option string) (string, error) {
	if value, ok := os.LookupEnv(option); ok {
		return value, nil
	}
	value, ok, err := c.repo.Lookup(option)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %q not found, declare it as an environment variable or define a default value", ErrUndefinedValue, option)
	}
	return value, nil
}

// String resolves option as a raw string.
func (c *Config) String(option string) (string, error) {
	return c.Get(option)
}

// StringDefault resolves option, returning def when the key is absent from
// both the environment and the repository.
func (c *Config) StringDefault(option, def string) (string, error) {
	return ResolveDefault(c, option, def, cast.String)
}

// Bool resolves option through the boolean cast, so "False" from the
// environment becomes false rather than a truthy non-empty string.
func (c *Config) Bool(option string) (bool, error) {
	return Resolve(c, option, cast.Bool)
}

// BoolDefault resolves option as a bool, returning def when the key is
// absent.
func (c *Config) BoolDefault(option string, def bool) (bool, error) {
	return ResolveDefault(c, option, def, cast.Bool)
}

// Int resolves option as a base-10 integer.
func (c *Config) Int(option string) (int, error) {
	return Resolve(c, option, cast.Int)
}

// IntDefault resolves option as an integer, returning def when the key is
// absent.
func (c *Config) IntDefault(option string, def int) (int, error) {
	return ResolveDefault(c, option, def, cast.Int)
}

// Int64 resolves option as a base-10 64-bit integer.
func (c *Config) Int64(option string) (int64, error) {
	return Resolve(c, option, cast.Int64)
}

// Int64Default resolves option as a 64-bit integer, returning def when the
// key is absent.
func (c *Config) Int64Default(option string, def int64) (int64, error) {
	return ResolveDefault(c, option, def, cast.Int64)
}

// Float64 resolves option as a float.
func (c *Config) Float64(option string) (float64, error) {
	return Resolve(c, option, cast.Float64)
}

// Float64Default resolves option as a float, returning def when the key is
// absent.
func (c *Config) Float64Default(option string, def float64) (float64, error) {
	return ResolveDefault(c, option, def, cast.Float64)
}

// Duration resolves option as a Go duration string.
func (c *Config) Duration(option string) (time.Duration, error) {
	return Resolve(c, option, cast.Duration)
}

// DurationDefault resolves option as a duration, returning def when the key
// is absent.
func (c *Config) DurationDefault(option string, def time.Duration) (time.Duration, error) {
	return ResolveDefault(c, option, def, cast.Duration)
}
