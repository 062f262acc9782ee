package config

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aleister1102/devkit/internal/common"
)

// ValidateConfig validates the loaded configuration against struct tags
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "configuration is nil")
	}

	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for diff tokenization modes
	_ = validate.RegisterValidation("diffmode", func(fl validator.FieldLevel) bool {
		mode := strings.ToLower(fl.Field().String())
		switch mode {
		case "", "line", "word", "character", "char":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			first := validationErrors[0]
			return common.NewConfigurationError(first.StructNamespace(), first.Field(), "failed validation rule '"+first.Tag()+"'")
		}
		return common.WrapError(err, "config validation failed")
	}
	return nil
}
