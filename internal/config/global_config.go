package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aleister1102/devkit/internal/common"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	DiffConfig      DiffConfig      `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	ImageDiffConfig ImageDiffConfig `json:"image_diff_config,omitempty" yaml:"image_diff_config,omitempty"`
	LookupConfig    LookupConfig    `json:"lookup_config,omitempty" yaml:"lookup_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:       NewDefaultLogConfig(),
		DiffConfig:      NewDefaultDiffConfig(),
		ImageDiffConfig: NewDefaultImageDiffConfig(),
		LookupConfig:    NewDefaultLookupConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default
// locations. Both YAML and JSON formats are supported, chosen by file
// extension. A missing config file is not an error: defaults apply.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read config file '%s'", filePath)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent unmarshals config data as YAML or JSON by extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. explicitly provided path
// 2. DEVKIT_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// 4. config.yaml / config.json in the executable's directory
func GetConfigPath(providedPath string) string {
	if providedPath != "" {
		if _, err := os.Stat(providedPath); err == nil {
			return providedPath
		}
	}

	if envPath := os.Getenv("DEVKIT_CONFIG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	var locations []string
	if cwd, err := os.Getwd(); err == nil {
		locations = append(locations, cwd)
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		if len(locations) == 0 || locations[0] != exeDir {
			locations = append(locations, exeDir)
		}
	}

	for _, loc := range locations {
		for _, file := range []string{"config.yaml", "config.json"} {
			path := filepath.Join(loc, file)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
