package logger

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/aleister1102/devkit/internal/common"
	"github.com/aleister1102/devkit/internal/config"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config  LoggerConfig
	factory *WriterFactory
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:  DefaultLoggerConfig(),
		factory: NewWriterFactory(),
	}
}

// WithConfig sets the logger configuration from the application config
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) (*LoggerBuilder, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return lb, err
	}

	lb.config.Level = level
	lb.config.Format = ParseFormat(cfg.LogFormat)
	lb.config.EnableFile = cfg.LogFile != ""
	lb.config.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		lb.config.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		lb.config.MaxBackups = cfg.MaxLogBackups
	}
	return lb, nil
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return zerolog.Nop(), err
	}

	writers := lb.createWriters()
	if len(writers) == 0 {
		return zerolog.Nop(), common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	instance := zerolog.New(multiWriter).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	return instance, nil
}

// validateConfig validates the logger configuration
func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return common.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}
	if lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}
	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}
	if lb.config.EnableFile {
		writers = append(writers, lb.factory.CreateFileWriter(lb.config))
	}
	return writers
}

// New creates a new logger instance from the application log config
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	builder, err := NewLoggerBuilder().WithConfig(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}
	return builder.Build()
}
