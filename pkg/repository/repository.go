package repository

// Repository is a source of raw string settings backed by a single file
// format. It covers the file side of resolution only: precedence against the
// process environment is applied by the config coordinator, so it cannot
// differ between variants.
type Repository interface {
	// Lookup returns the raw value for key, reporting whether the key is
	// present in the backing store. A non-nil error means the backing file
	// could not be read or parsed.
	Lookup(key string) (value string, ok bool, err error)
}

// Enumerator is an optional capability for repositories that can list every
// key/value pair they hold. It is used for struct binding, where the whole
// backing store is merged into one environment view.
type Enumerator interface {
	Values() (map[string]string, error)
}

// Empty is the repository used when no settings file exists: every lookup
// misses, leaving the process environment as the only source.
type Empty struct{}

func (Empty) Lookup(string) (string, bool, error) { return "", false, nil }

func (Empty) Values() (map[string]string, error) { return map[string]string{}, nil }
