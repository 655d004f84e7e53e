package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jokenpo.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	logger, closer, err := SetupFileLogger(path, "info")
	require.NoError(t, err)
	logger.Info("Starting game")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier run")
	assert.Contains(t, string(data), "Starting game")
}

func TestSetupFileLoggerWithoutPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	logger, closer, err := SetupFileLogger("", "debug")
	require.NoError(t, err)
	logger.Info("Starting game")
	require.NoError(t, closer.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSetupFileLoggerRejectsLevel(t *testing.T) {
	_, _, err := SetupFileLogger("", "loud")
	assert.Error(t, err)
}
