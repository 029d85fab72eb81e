package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confkit/pkg/cast"
	"github.com/confkit/confkit/pkg/config"
)

// The process-wide helpers share one memoized AutoConfig, so everything they
// guarantee is exercised in a single test: the first lookup must search from
// the working directory of the consuming process, not from this library's
// own source directory.
func TestDefaultConfig_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ProcessWideKey=from_working_dir\nProcessWidePort=4321\n")
	os.Unsetenv("ProcessWideKey")
	os.Unsetenv("ProcessWidePort")
	os.Unsetenv("ProcessWideMissing")
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	value, err := config.Get("ProcessWideKey")
	require.NoError(t, err)
	assert.Equal(t, "from_working_dir", value,
		"the package-level search should root in the working directory")

	port, err := config.Value("ProcessWidePort", cast.Int)
	require.NoError(t, err)
	assert.Equal(t, 4321, port)

	fallback, err := config.GetDefault("ProcessWideMissing", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", fallback)

	typed, err := config.ValueDefault("ProcessWideMissing", true, cast.Bool)
	require.NoError(t, err)
	assert.True(t, typed)
}
