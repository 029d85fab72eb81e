package repository

import (
	"errors"
	"fmt"
	"maps"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Yaml reads settings from a flat YAML mapping of scalar values:
//
//	DEBUG: true
//	MAX_CONNECTIONS: 50
//	GREETING: "hello"
//
// Scalars are stored in their string rendering so the same casts apply as
// for every other source. Nested mappings and sequences are rejected. The
// file is parsed eagerly, like the INI variant.
type Yaml struct {
	values map[string]string
}

// NewYaml creates a repository backed by the YAML file at path.
func NewYaml(path string, opts ...Option) (*Yaml, error) {
	o := buildOptions(opts)
	data, err := readFile(path, o.encoding)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		rendered, err := renderScalar(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, key)
		}
		values[key] = rendered
	}
	return &Yaml{values: values}, nil
}

// Lookup returns the rendered value for key.
func (r *Yaml) Lookup(key string) (string, bool, error) {
	value, ok := r.values[key]
	return value, ok, nil
}

// Values returns a copy of every key/value pair in the file.
func (r *Yaml) Values() (map[string]string, error) {
	return maps.Clone(r.values), nil
}

func renderScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: nested values are not supported", ErrInvalidFile)
	}
}
