package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ROSCOURSE_CONTENT",
		"ROSCOURSE_LOG",
		"ROSCOURSE_LOG_LEVEL",
		"ROSCOURSE_ADVANCE_DELAY",
		"ROSCOURSE_CODE_STYLE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.ContentPath)
	assert.Empty(t, cfg.LogPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.AdvanceDelay)
	assert.Equal(t, "monokai", cfg.CodeStyle)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("ROSCOURSE_CONTENT", "/tmp/course.yaml")
	t.Setenv("ROSCOURSE_LOG_LEVEL", "debug")
	t.Setenv("ROSCOURSE_ADVANCE_DELAY", "1s")
	t.Setenv("ROSCOURSE_CODE_STYLE", "dracula")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/course.yaml", cfg.ContentPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.AdvanceDelay)
	assert.Equal(t, "dracula", cfg.CodeStyle)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ROSCOURSE_CODE_STYLE=nord\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ROSCOURSE_CODE_STYLE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.CodeStyle)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("ROSCOURSE_ADVANCE_DELAY", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.AdvanceDelay)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative delay", "ROSCOURSE_ADVANCE_DELAY", "-1s"},
		{"unknown level", "ROSCOURSE_LOG_LEVEL", "loud"},
		{"empty style", "ROSCOURSE_CODE_STYLE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cfg := &Config{LogPath: path, LogLevel: slog.LevelDebug}

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Debug("chapter opened", "id", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "chapter opened")
	assert.Contains(t, string(data), "id=3")
}

func TestNewLogger_Discard(t *testing.T) {
	logger, closer, err := (&Config{}).NewLogger()
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}
