// Package config provides configuration management for the mediasort
// organizer. Settings come from defaults and MEDIASORT_-prefixed
// environment variables; there is no config file.
package config

// Default configuration values for mediasort.
const (
	// DefaultOutput is the report format used when none is requested.
	DefaultOutput = "plain"

	// DefaultLogLevel is the log level used when none is requested.
	DefaultLogLevel = "info"
)
