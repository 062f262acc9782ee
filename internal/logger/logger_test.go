package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/devkit/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	log, err := New(config.NewDefaultLogConfig())

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_FileLogging(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "devkit.log")
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	log, err := New(cfg)
	require.NoError(t, err)

	log.Debug().Str("tool", "textdiff").Msg("test entry")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tool":"textdiff"`)
	assert.Contains(t, string(data), "test entry")
}

func TestDefaultLoggerConfig_TracksConfigDefaults(t *testing.T) {
	cfg := DefaultLoggerConfig()

	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, ParseFormat(config.DefaultLogFormat), cfg.Format)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.EnableFile)
	assert.Equal(t, config.DefaultMaxLogSizeMB, cfg.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, cfg.MaxBackups)
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatConsole, ParseFormat("console"))
	assert.Equal(t, FormatConsole, ParseFormat(""))
}
