package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/confkit/confkit/pkg/repository"
)

// Bind populates a struct with `env` tags from the coordinator's merged view
// of process environment over repository values, so tagged fields obey the
// same precedence as Get.
//
// Each struct type is bound at most once per coordinator; subsequent calls
// for the same type return the cached copy.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Bind(cfg, &db); err != nil {
//		// Handle error
//	}
func Bind[T any](c *Config, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	c.bindMu.Lock()
	defer c.bindMu.Unlock()

	if cached, ok := c.bindCache[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	environment, err := c.environ()
	if err != nil {
		return err
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environment}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy to avoid external modifications
	c.bindCache[typeName] = *v
	return nil
}

// MustBind works like Bind but panics if binding fails. This is useful for
// configurations that are required for the application to start.
func MustBind[T any](c *Config, v *T) {
	if err := Bind(c, v); err != nil {
		panic(fmt.Sprintf("Failed to bind required configuration: %v", err))
	}
}

// ResetBindCache clears the struct-binding cache, which is handy in tests
// that mutate the environment between bindings.
func (c *Config) ResetBindCache() {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	c.bindCache = make(map[string]any)
}

// environ builds the merged environment: repository values shadowed by the
// process environment.
func (c *Config) environ() (map[string]string, error) {
	merged := make(map[string]string)
	if enum, ok := c.repo.(repository.Enumerator); ok {
		values, err := enum.Values()
		if err != nil {
			return nil, err
		}
		maps.Copy(merged, values)
	}
	for _, pair := range os.Environ() {
		key, value, _ := strings.Cut(pair, "=")
		merged[key] = value
	}
	return merged, nil
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
