package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogPathMovesExistingLoggers(t *testing.T) {
	// Requested before any path is known, as config loading does.
	framework := GetInternalLogger()
	app := GetLogger()

	path := filepath.Join(t.TempDir(), "logs", "gui.log")
	SetLogPath(path)
	t.Cleanup(CloseLogger)

	framework.Warn("framework line")
	app.Info("app line")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "parent directories are created")
	assert.Contains(t, string(data), `"msg":"framework line"`)
	assert.Contains(t, string(data), `"component":"scriptgui"`)
	assert.Contains(t, string(data), `"msg":"app line"`)
}

func TestCloseLoggerReturnsToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.log")
	SetLogPath(path)
	CloseLogger()

	GetLogger().Info("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}

func TestSetLogPathUnwritableStaysOnStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	SetLogPath(filepath.Join(blocker, "logs", "gui.log"))
	t.Cleanup(CloseLogger)

	assert.Same(t, os.Stderr, output.w)
}
