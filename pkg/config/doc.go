// Package config resolves settings across the process environment, an
// on-disk settings file and caller-supplied defaults, with one fixed
// precedence: environment over file over default.
//
// It layers a small coordinator on top of the repository package and applies
// casts from the cast package, so a value behaves identically no matter
// which source produced it.
//
// # Architecture
//
//   - `Config` – owns exactly one `repository.Repository` and implements the
//     precedence and error policy. Stateless beyond the repository reference
//     and the struct-binding cache.
//   - `Resolve` / `ResolveDefault` / `ResolveStringDefault` – generic
//     resolution with a cast; a typed default is returned unchanged, a
//     string default flows through the cast like any stored value.
//   - `AutoConfig` – the lazy locator: on first use it walks upward from the
//     search path looking for `.env`, then `settings.ini`, then
//     `settings.yaml`, builds the matching repository, and memoizes the
//     result for the process lifetime under a `sync.Once` guard.
//   - `Bind` – populates an `env`-tagged struct from the merged view via
//     `github.com/caarlos0/env/v11`, cached per type and coordinator.
//
// # Usage
//
// Most applications use the package-level helpers backed by a process-wide
// AutoConfig:
//
//	debug, err := config.Value("DEBUG", cast.Bool)
//	dsn, err := config.GetDefault("DATABASE_URL", "postgres://localhost/app")
//
// Binding an explicit file instead:
//
//	repo, err := repository.NewDotenv("/etc/app/.env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := config.New(repo)
//	hosts, err := config.Resolve(cfg, "ALLOWED_HOSTS", cast.Csv(cast.String))
//
// # Error Handling
//
// Sentinel errors usable with `errors.Is`:
//
//   - `ErrUndefinedValue` – key absent everywhere and no default supplied.
//   - `ErrParsingConfig` – struct binding failed.
//   - `ErrNilPointer` – nil pointer passed to `Bind`/`MustBind`.
//
// Cast and choice failures surface the cast package's sentinels; repository
// construction and parse failures surface the repository package's. Nothing
// is retried: every failure is a deterministic function of the inputs.
package config
