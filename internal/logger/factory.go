package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers for the configured format
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a stderr writer in the configured format
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return wf.wrapWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a rotating file writer
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	// If directory creation fails, lumberjack surfaces the write error later
	_ = os.MkdirAll(filepath.Dir(config.FilePath), 0755)

	rotating := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	// Files never carry ANSI color
	return wf.wrapWriter(rotating, config.Format, true)
}

func (wf *WriterFactory) wrapWriter(out io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatConsole:
		return zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    noColor,
			TimeFormat: time.RFC3339,
		}
	case FormatText:
		return zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	default:
		return out
	}
}
