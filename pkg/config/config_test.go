package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confkit/pkg/cast"
	"github.com/confkit/confkit/pkg/config"
	"github.com/confkit/confkit/pkg/repository"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func dotenvConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	repo, err := repository.NewDotenv(writeFile(t, t.TempDir(), ".env", content))
	require.NoError(t, err)
	return config.New(repo)
}

func TestConfig_EnvironmentPrecedence(t *testing.T) {
	cfg := dotenvConfig(t, "KeyOverrideByEnv=NotThis\n")
	t.Setenv("KeyOverrideByEnv", "This")

	value, err := cfg.Get("KeyOverrideByEnv")
	require.NoError(t, err)
	assert.Equal(t, "This", value, "the environment should win over the file")
}

func TestConfig_EmptyEnvValueCountsAsPresent(t *testing.T) {
	cfg := dotenvConfig(t, "Key=file_value\n")
	t.Setenv("Key", "")

	value, err := cfg.Get("Key")
	require.NoError(t, err)
	assert.Equal(t, "", value, "an empty environment value is still a defined value")
}

func TestConfig_FileOnlyValue(t *testing.T) {
	os.Unsetenv("FileOnly")
	cfg := dotenvConfig(t, "FileOnly=from_file\n")

	value, err := cfg.Get("FileOnly")
	require.NoError(t, err)
	assert.Equal(t, "from_file", value)
}

func TestConfig_UndefinedValue(t *testing.T) {
	os.Unsetenv("UndefinedKey")
	cfg := dotenvConfig(t, "")

	_, err := cfg.Get("UndefinedKey")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUndefinedValue)
	assert.Contains(t, err.Error(), "UndefinedKey", "the error should name the missing key")
}

func TestConfig_BoolFromEnvString(t *testing.T) {
	// The classic trap: "False" is a truthy non-empty string unless cast.
	t.Setenv("DEBUG", "False")
	cfg := config.New(repository.Empty{})

	debug, err := cfg.Bool("DEBUG")
	require.NoError(t, err)
	assert.False(t, debug, `resolve("DEBUG", bool) should be false, not a truthy string`)
}

func TestConfig_TypedGetters(t *testing.T) {
	cfg := dotenvConfig(t, `
Port=5432
MaxBytes=5368709120
Ratio=0.25
Timeout=45s
Enabled=on
`)
	for _, key := range []string{"Port", "MaxBytes", "Ratio", "Timeout", "Enabled"} {
		os.Unsetenv(key)
	}

	port, err := cfg.Int("Port")
	require.NoError(t, err)
	assert.Equal(t, 5432, port)

	maxBytes, err := cfg.Int64("MaxBytes")
	require.NoError(t, err)
	assert.Equal(t, int64(5368709120), maxBytes)

	ratio, err := cfg.Float64("Ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ratio, 0.0001)

	timeout, err := cfg.Duration("Timeout")
	require.NoError(t, err)
	assert.Equal(t, "45s", timeout.String())

	enabled, err := cfg.Bool("Enabled")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestConfig_TypedDefaults(t *testing.T) {
	os.Unsetenv("MissingKey")
	cfg := config.New(repository.Empty{})

	value, err := cfg.StringDefault("MissingKey", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	port, err := cfg.IntDefault("MissingKey", 8080)
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	maxBytes, err := cfg.Int64Default("MissingKey", 1024)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), maxBytes)

	enabled, err := cfg.BoolDefault("MissingKey", true)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestConfig_CastErrorSurfaces(t *testing.T) {
	cfg := dotenvConfig(t, "NotANumber=abc\n")
	os.Unsetenv("NotANumber")

	_, err := cfg.Int("NotANumber")
	require.Error(t, err)
	assert.ErrorIs(t, err, cast.ErrInvalidCast)
}

func TestConfig_NilRepository(t *testing.T) {
	t.Setenv("OnlyEnv", "value")
	cfg := config.New(nil)

	value, err := cfg.Get("OnlyEnv")
	require.NoError(t, err)
	assert.Equal(t, "value", value, "a nil repository should degrade to environment-only")
}

func TestConfig_IniRepository(t *testing.T) {
	repo, err := repository.NewIni(writeFile(t, t.TempDir(), "settings.ini", `
[settings]
CONNECTION_TYPE=usb
PercentIsEscaped=%%
`))
	require.NoError(t, err)
	cfg := config.New(repo)
	os.Unsetenv("CONNECTION_TYPE")
	os.Unsetenv("PercentIsEscaped")

	// Identical precedence semantics as the dotenv variant.
	conn, err := config.Resolve(cfg, "CONNECTION_TYPE", cast.Choices("eth", "usb", "bluetooth"))
	require.NoError(t, err)
	assert.Equal(t, "usb", conn)

	_, err = config.Resolve(cfg, "CONNECTION_TYPE", cast.Choices("a", "b"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cast.ErrInvalidChoice)

	value, err := cfg.Get("PercentIsEscaped")
	require.NoError(t, err)
	assert.Equal(t, "%", value)
}
