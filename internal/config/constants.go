package config

// Default values for configuration sections
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	DefaultDiffMode      = "line"
	DefaultDiffThreshold = 30

	DefaultLookupEndpoint       = "http://ip-api.com/json"
	DefaultLookupTimeoutSeconds = 10
)
