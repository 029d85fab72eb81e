package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/confkit/confkit/pkg/repository"
)

// supportedFiles lists the recognized settings files in search priority
// order: the first name found at a directory level wins and stops the
// search.
var supportedFiles = []struct {
	name  string
	build func(path string, opts ...repository.Option) (repository.Repository, error)
}{
	{".env", func(p string, opts ...repository.Option) (repository.Repository, error) {
		return repository.NewDotenv(p, opts...)
	}},
	{"settings.ini", func(p string, opts ...repository.Option) (repository.Repository, error) {
		return repository.NewIni(p, opts...)
	}},
	{"settings.yaml", func(p string, opts ...repository.Option) (repository.Repository, error) {
		return repository.NewYaml(p, opts...)
	}},
}

// AutoConfig locates the settings file on first use: it walks upward from
// the search path through parent directories, checking each level for the
// supported file names in order. The first match selects the repository
// variant; reaching the filesystem root without a match degrades to
// environment-only resolution.
//
// The search runs at most once per AutoConfig, guarded so that concurrent
// first lookups parse the file a single time and every goroutine observes
// the same Config afterward.
type AutoConfig struct {
	searchPath string
	callerDir  string
	encoding   string
	logger     *slog.Logger

	once sync.Once
	cfg  *Config
	err  error
}

// AutoOption configures an AutoConfig.
type AutoOption func(*AutoConfig)

// WithSearchPath overrides the directory the upward search starts from.
// Defaults to the caller's directory, falling back to the working directory
// when the caller's source path no longer exists (e.g. deployed binaries).
func WithSearchPath(path string) AutoOption {
	return func(a *AutoConfig) {
		a.searchPath = path
	}
}

// WithFileEncoding sets the text encoding used to read whichever settings
// file the search finds. Must be set before the first lookup; construction
// options make that the only possibility.
func WithFileEncoding(name string) AutoOption {
	return func(a *AutoConfig) {
		if name != "" {
			a.encoding = name
		}
	}
}

// WithLogger sets the logger used to report the search outcome at debug
// level. Nil loggers are ignored; the default discards everything.
func WithLogger(logger *slog.Logger) AutoOption {
	return func(a *AutoConfig) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAutoConfig creates a lazily-initialized coordinator. Nothing touches
// the filesystem until the first lookup.
func NewAutoConfig(opts ...AutoOption) *AutoConfig {
	a := newAutoConfig(opts)
	// Capture the caller's directory now; by the time the lazy search runs
	// the call stack is long gone.
	if _, file, _, ok := runtime.Caller(1); ok {
		a.callerDir = filepath.Dir(file)
	}
	return a
}

// newWorkingDirAutoConfig builds an AutoConfig whose upward search starts
// from the working directory at first lookup. Used for the package-level
// instance, which is constructed during package initialization: capturing a
// caller there would record this package's own source directory, not the
// application's.
func newWorkingDirAutoConfig(opts ...AutoOption) *AutoConfig {
	return newAutoConfig(opts)
}

func newAutoConfig(opts []AutoOption) *AutoConfig {
	a := &AutoConfig{
		encoding: repository.DefaultEncoding,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the underlying coordinator, locating and parsing the
// settings file on first call.
func (a *AutoConfig) Config() (*Config, error) {
	a.once.Do(a.load)
	return a.cfg, a.err
}

// Get resolves option through the auto-located configuration.
func (a *AutoConfig) Get(option string) (string, error) {
	cfg, err := a.Config()
	if err != nil {
		return "", err
	}
	return cfg.Get(option)
}

// GetDefault resolves option, returning def when the key is absent from
// both the environment and the located settings file.
func (a *AutoConfig) GetDefault(option, def string) (string, error) {
	cfg, err := a.Config()
	if err != nil {
		return "", err
	}
	return cfg.StringDefault(option, def)
}

func (a *AutoConfig) load() {
	start := a.startDir()

	path, build := findSettingsFile(start)
	if path == "" {
		a.logger.Debug("no settings file found, resolving from environment only", "search_path", start)
		a.cfg = New(repository.Empty{})
		return
	}

	repo, err := build(path, repository.WithEncoding(a.encoding))
	if err != nil {
		a.err = err
		return
	}
	a.logger.Debug("settings file located", "path", path)
	a.cfg = New(repo)
}

// startDir picks the directory the upward search begins in: the explicit
// override, else the caller's directory, else the working directory.
func (a *AutoConfig) startDir() string {
	if a.searchPath != "" {
		return a.searchPath
	}
	if a.callerDir != "" {
		if info, err := os.Stat(a.callerDir); err == nil && info.IsDir() {
			return a.callerDir
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// findSettingsFile walks from dir up to the filesystem root, returning the
// first supported settings file and its repository builder. A missing file
// at any level is not an error; the search just continues to the parent.
func findSettingsFile(dir string) (string, func(string, ...repository.Option) (repository.Repository, error)) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil
	}
	for {
		for _, candidate := range supportedFiles {
			path := filepath.Join(dir, candidate.name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, candidate.build
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
