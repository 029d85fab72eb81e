package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the text encoding used for file reads unless overridden
// with WithEncoding.
const DefaultEncoding = "UTF-8"

type options struct {
	encoding string
	section  string
}

// Option configures a file-backed repository.
type Option func(*options)

// WithEncoding sets the IANA name of the text encoding used to decode the
// settings file, for example "ISO-8859-1" or "windows-1252". Defaults to
// UTF-8. Because the encoding is fixed at construction, it cannot change
// after the first lookup.
func WithEncoding(name string) Option {
	return func(o *options) {
		if name != "" {
			o.encoding = name
		}
	}
}

// WithSection sets the INI section that holds the settings keys. Defaults to
// "settings". Only meaningful for the Ini repository.
func WithSection(name string) Option {
	return func(o *options) {
		if name != "" {
			o.section = name
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		encoding: DefaultEncoding,
		section:  DefaultSection,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// statFile verifies that path names an existing regular file. Explicit paths
// fail fast: a caller who passed a path expects the file to be there.
func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
	}
	return nil
}

// readFile reads path and decodes its contents from the named encoding into
// UTF-8 bytes.
func readFile(path, encodingName string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return decodeBytes(raw, encodingName)
}

func decodeBytes(raw []byte, encodingName string) ([]byte, error) {
	if isUTF8(encodingName) {
		return raw, nil
	}
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encodingName)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding as %q: %w", ErrInvalidFile, encodingName, err)
	}
	return decoded, nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
