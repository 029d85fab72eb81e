package config

import "github.com/confkit/confkit/pkg/cast"

// std is the process-wide auto-located configuration behind the package
// level helpers. Its one-time search is guarded inside AutoConfig, so
// concurrent first calls are safe. It starts the upward search from the
// working directory: package initialization runs before any application
// frame exists, so there is no caller directory worth capturing here.
var std = newWorkingDirAutoConfig()

// Get resolves option using the process-wide auto-located configuration.
// The settings file search walks upward from the working directory on the
// first call and is memoized for the process lifetime. Construct an
// AutoConfig explicitly to search from somewhere else.
func Get(option string) (string, error) {
	return std.Get(option)
}

// GetDefault resolves option, returning def when the key is absent
// everywhere.
func GetDefault(option, def string) (string, error) {
	return std.GetDefault(option, def)
}

// Value resolves option through fn using the process-wide configuration.
//
//	debug, err := config.Value("DEBUG", cast.Bool)
//	hosts, err := config.Value("ALLOWED_HOSTS", cast.Csv(cast.String))
func Value[T any](option string, fn cast.Func[T]) (T, error) {
	cfg, err := std.Config()
	if err != nil {
		var zero T
		return zero, err
	}
	return Resolve(cfg, option, fn)
}

// ValueDefault resolves option through fn, returning the typed def when the
// key is absent everywhere.
func ValueDefault[T any](option string, def T, fn cast.Func[T]) (T, error) {
	cfg, err := std.Config()
	if err != nil {
		var zero T
		return zero, err
	}
	return ResolveDefault(cfg, option, def, fn)
}
