package repository

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultSection is the INI section that holds settings keys unless
// overridden with WithSection.
const DefaultSection = "settings"

// maxInterpolationDepth bounds nested %(name)s references.
const maxInterpolationDepth = 10

// Ini reads settings from one section of an INI file, falling back to the
// DEFAULT section for keys the configured section does not define. Values
// support %(name)s interpolation against other keys of the same section (and
// the DEFAULT section), with %% as a literal percent escape.
//
// Unlike the dotenv variant the file is parsed eagerly, so a missing file or
// a malformed value is reported at construction time.
type Ini struct {
	values map[string]string
}

// NewIni creates a repository backed by the named section of the INI file at
// path.
func NewIni(path string, opts ...Option) (*Ini, error) {
	o := buildOptions(opts)
	data, err := readFile(path, o.encoding)
	if err != nil {
		return nil, err
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}

	// DEFAULT section keys participate in lookups and interpolation alike,
	// shadowed by keys of the configured section.
	vars := make(map[string]string)
	if defaults, err := file.GetSection(ini.DefaultSection); err == nil {
		for _, key := range defaults.Keys() {
			vars[key.Name()] = key.Value()
		}
	}
	if section, err := file.GetSection(o.section); err == nil {
		for _, key := range section.Keys() {
			vars[key.Name()] = key.Value()
		}
	}

	values := make(map[string]string, len(vars))
	for name, raw := range vars {
		expanded, err := interpolate(raw, vars, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, name)
		}
		values[name] = expanded
	}
	return &Ini{values: values}, nil
}

// Lookup returns the interpolated value for key from the configured section.
func (r *Ini) Lookup(key string) (string, bool, error) {
	value, ok := r.values[key]
	return value, ok, nil
}

// Values returns a copy of every key/value pair in the configured section.
func (r *Ini) Values() (map[string]string, error) {
	return maps.Clone(r.values), nil
}

// interpolate expands %(name)s references and %% escapes in value. Any other
// use of % is malformed.
func interpolate(value string, vars map[string]string, depth int) (string, error) {
	if depth > maxInterpolationDepth {
		return "", fmt.Errorf("%w: interpolation depth exceeded in %q", ErrInterpolation, value)
	}

	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(value) {
			return "", fmt.Errorf("%w: stray %% at end of %q", ErrInterpolation, value)
		}
		switch value[i] {
		case '%':
			b.WriteByte('%')
		case '(':
			end := strings.IndexByte(value[i:], ')')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated reference in %q", ErrInterpolation, value)
			}
			name := value[i+1 : i+end]
			i += end
			if i+1 >= len(value) || value[i+1] != 's' {
				return "", fmt.Errorf("%w: reference %%(%s) must end with 's'", ErrInterpolation, name)
			}
			i++
			ref, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("%w: reference to undefined key %q", ErrInterpolation, name)
			}
			expanded, err := interpolate(ref, vars, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
		default:
			return "", fmt.Errorf("%w: invalid %% usage in %q", ErrInterpolation, value)
		}
	}
	return b.String(), nil
}
