package config

// DiffConfig defines configuration for the text diff tool
type DiffConfig struct {
	Mode      string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,diffmode"`
	SortLines bool   `json:"sort_lines,omitempty" yaml:"sort_lines,omitempty"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Mode: DefaultDiffMode,
	}
}

// ImageDiffConfig defines configuration for the image diff tool
type ImageDiffConfig struct {
	Threshold int `json:"threshold,omitempty" yaml:"threshold,omitempty" validate:"min=0,max=255"`
}

// NewDefaultImageDiffConfig creates default image diff configuration
func NewDefaultImageDiffConfig() ImageDiffConfig {
	return ImageDiffConfig{
		Threshold: DefaultDiffThreshold,
	}
}

// LookupConfig defines configuration for the IP lookup tool
type LookupConfig struct {
	Endpoint       string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=1"`
}

// NewDefaultLookupConfig creates default lookup configuration
func NewDefaultLookupConfig() LookupConfig {
	return LookupConfig{
		Endpoint:       DefaultLookupEndpoint,
		TimeoutSeconds: DefaultLookupTimeoutSeconds,
	}
}
