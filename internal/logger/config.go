package logger

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/devkit/internal/config"
)

// LogFormat selects how log events are rendered.
type LogFormat int

const (
	// FormatJSON writes raw zerolog JSON lines, one event per line.
	FormatJSON LogFormat = iota
	// FormatConsole writes human-readable output, colored on terminals.
	FormatConsole
	// FormatText is console-style output with color always stripped.
	FormatText
)

func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// LoggerConfig is the resolved logger setup derived from config.LogConfig.
// Console output is always on; file output is enabled by setting FilePath.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// DefaultLoggerConfig mirrors the defaults of the config package:
// console output at info level, no log file.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        ParseFormat(config.DefaultLogFormat),
		EnableConsole: true,
		MaxSizeMB:     config.DefaultMaxLogSizeMB,
		MaxBackups:    config.DefaultMaxLogBackups,
	}
}
