package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confkit/pkg/config"
)

func TestAutoConfig_FindsDotenv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "AutoKey=from_dotenv\n")
	os.Unsetenv("AutoKey")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))
	value, err := auto.Get("AutoKey")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", value)
}

func TestAutoConfig_FindsIni(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.ini", "[settings]\nAutoKey=from_ini\n")
	os.Unsetenv("AutoKey")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))
	value, err := auto.Get("AutoKey")
	require.NoError(t, err)
	assert.Equal(t, "from_ini", value)
}

func TestAutoConfig_DotenvWinsOverIni(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "AutoKey=from_dotenv\n")
	writeFile(t, dir, "settings.ini", "[settings]\nAutoKey=from_ini\n")
	os.Unsetenv("AutoKey")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))
	value, err := auto.Get("AutoKey")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", value, "the dotenv file should be checked before the ini file")
}

func TestAutoConfig_SearchesParents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "settings.ini", "[settings]\nAutoKey=from_parent\n")
	nested := filepath.Join(root, "project", "app")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	os.Unsetenv("AutoKey")

	auto := config.NewAutoConfig(config.WithSearchPath(nested))
	value, err := auto.Get("AutoKey")
	require.NoError(t, err)
	assert.Equal(t, "from_parent", value, "the search should walk up through parent directories")
}

func TestAutoConfig_NoFileDegradesToEnvironment(t *testing.T) {
	dir := t.TempDir()
	os.Unsetenv("ANY_KEY")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))

	value, err := auto.GetDefault("ANY_KEY", "x")
	require.NoError(t, err, "total absence of settings files is not an error")
	assert.Equal(t, "x", value)

	t.Setenv("ANY_KEY", "from_env")
	value, err = auto.Get("ANY_KEY")
	require.NoError(t, err)
	assert.Equal(t, "from_env", value, "environment variables should still resolve")
}

func TestAutoConfig_SearchRunsOnce(t *testing.T) {
	dir := t.TempDir()
	os.Unsetenv("LateKey")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))
	_, err := auto.GetDefault("LateKey", "fallback")
	require.NoError(t, err)

	// A settings file appearing after the first lookup must be ignored.
	writeFile(t, dir, ".env", "LateKey=too_late\n")

	value, err := auto.GetDefault("LateKey", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value, "the located config should be memoized for the process lifetime")
}

func TestAutoConfig_ConcurrentFirstUse(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "SharedKey=shared\n")
	os.Unsetenv("SharedKey")

	auto := config.NewAutoConfig(config.WithSearchPath(dir))

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := auto.Get("SharedKey")
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}
	wg.Wait()

	for _, value := range results {
		assert.Equal(t, "shared", value, "every goroutine should observe the same resolved config")
	}
}

func TestAutoConfig_FileEncoding(t *testing.T) {
	dir := t.TempDir()
	// "café" in ISO-8859-1: é is the single byte 0xE9.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("Drink=caf\xe9\n"), 0o600))
	os.Unsetenv("Drink")

	auto := config.NewAutoConfig(
		config.WithSearchPath(dir),
		config.WithFileEncoding("ISO-8859-1"),
	)
	value, err := auto.Get("Drink")
	require.NoError(t, err)
	assert.Equal(t, "café", value)
}
