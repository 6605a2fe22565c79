package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	// Output is the report format name (plain, pretty, json).
	Output string `mapstructure:"output"`

	// Quiet suppresses the console banner and progress lines.
	Quiet bool `mapstructure:"quiet"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// New returns a viper instance wired for mediasort: defaults set and
// MEDIASORT_-prefixed environment variables bound (for example
// MEDIASORT_OUTPUT or MEDIASORT_LOGGING_LEVEL). No config file is read.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("MEDIASORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", DefaultOutput)
	v.SetDefault("quiet", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty means use the default XDG path
	v.SetDefault("logging.components", map[string]string{})

	return v
}

// Load unmarshals the viper state into a typed Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
