package repository

import (
	"errors"
	"maps"
	"sync"

	"github.com/joho/godotenv"
)

// Dotenv reads settings from a `.env` file: one KEY=VALUE per line, blank
// lines and `#` comments ignored, optional `export ` prefix, optional single
// or double quoting with escape processing inside double quotes.
//
// The file is parsed once, lazily, on the first lookup; results are cached
// for the process lifetime and external file changes are never picked up.
type Dotenv struct {
	path     string
	encoding string

	once   sync.Once
	values map[string]string
	err    error
}

// NewDotenv creates a repository backed by the `.env` file at path. The file
// must exist; its contents are not read until the first lookup.
func NewDotenv(path string, opts ...Option) (*Dotenv, error) {
	o := buildOptions(opts)
	if err := statFile(path); err != nil {
		return nil, err
	}
	return &Dotenv{path: path, encoding: o.encoding}, nil
}

// Lookup returns the raw value for key from the parsed file.
func (r *Dotenv) Lookup(key string) (string, bool, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return "", false, r.err
	}
	value, ok := r.values[key]
	return value, ok, nil
}

// Values returns a copy of every key/value pair in the file.
func (r *Dotenv) Values() (map[string]string, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return nil, r.err
	}
	return maps.Clone(r.values), nil
}

func (r *Dotenv) load() {
	data, err := readFile(r.path, r.encoding)
	if err != nil {
		r.err = err
		return
	}
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		r.err = errors.Join(ErrInvalidFile, err)
		return
	}
	r.values = values
}
