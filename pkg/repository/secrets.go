package repository

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// DefaultSecretsDir is where container runtimes mount file-based secrets.
const DefaultSecretsDir = "/run/secrets"

// Secrets reads settings from a directory of files where each file name is a
// key and the file content is its value, as mounted by Docker and Kubernetes
// secret volumes. The directory is read eagerly at construction; values keep
// their content verbatim, including any trailing newline.
type Secrets struct {
	values map[string]string
}

// NewSecrets creates a repository backed by the secret files under dir.
func NewSecrets(dir string, opts ...Option) (*Secrets, error) {
	o := buildOptions(opts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
		}
		return nil, err
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := readFile(filepath.Join(dir, entry.Name()), o.encoding)
		if err != nil {
			return nil, err
		}
		values[entry.Name()] = string(content)
	}
	return &Secrets{values: values}, nil
}

// Lookup returns the content of the secret file named key.
func (r *Secrets) Lookup(key string) (string, bool, error) {
	value, ok := r.values[key]
	return value, ok, nil
}

// Values returns a copy of every secret in the directory.
func (r *Secrets) Values() (map[string]string, error) {
	return maps.Clone(r.values), nil
}
