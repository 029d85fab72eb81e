// Package repository abstracts "a source of raw string settings" over
// several on-disk formats.
//
// A Repository answers a single question: does this key exist in the backing
// store, and what is its raw string value. Typing, defaults and precedence
// against the process environment are layered on top by the config package,
// which keeps every variant behaving identically.
//
// # Variants
//
//   - `Dotenv` – `.env` files (KEY=VALUE lines, comments, quoting, optional
//     `export ` prefix), parsed lazily on first lookup via
//     `github.com/joho/godotenv`.
//   - `Ini` – one section of an INI file (default `settings`), with
//     ConfigParser-style `%(name)s` interpolation and `%%` escapes, parsed
//     eagerly via `gopkg.in/ini.v1`.
//   - `Yaml` – a flat YAML mapping of scalars, parsed eagerly via
//     `gopkg.in/yaml.v3`.
//   - `Secrets` – a directory of secret files (file name = key, content =
//     value), e.g. `/run/secrets` under Docker.
//   - `Empty` – always misses; used when no settings file exists anywhere.
//
// # Construction
//
// Constructors fail fast when the given path does not exist, since an
// explicit path implies the caller expects the file to be there:
//
//	repo, err := repository.NewDotenv(".env")
//	repo, err := repository.NewIni("settings.ini", repository.WithSection("settings"))
//	repo, err := repository.NewYaml("settings.yaml", repository.WithEncoding("ISO-8859-1"))
//
// Repositories are immutable once built. The text encoding is a construction
// option, so it is always fixed before the first lookup.
//
// # Error Handling
//
// Sentinel errors usable with `errors.Is`:
//
//   - `ErrFileNotFound` – the settings file or secrets directory is absent.
//   - `ErrInvalidFile` – the file exists but cannot be parsed or decoded.
//   - `ErrUnknownEncoding` – the configured encoding name is not in the IANA
//     index.
//   - `ErrInterpolation` – an INI value references an undefined key or uses
//     malformed `%` syntax.
package repository
