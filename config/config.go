package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. TVMAZE_TVMAZE_API_KEY or TVMAZE_LOGGING_LEVEL
const EnvPrefix = "TVMAZE"

// Load loads the configuration from file and environment. A missing config
// file is not an error when no explicit path was given: the defaults are
// enough to talk to the public API.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tvmaze"))
		}

		// Check /etc
		v.AddConfigPath("/etc/tvmaze/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TVMaze defaults
	v.SetDefault("tvmaze.url", "https://api.tvmaze.com")
	v.SetDefault("tvmaze.api_key", "")

	// HTTP defaults
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("http.concurrency", 5)

	// Output defaults
	v.SetDefault("output.show_details", true)
	v.SetDefault("output.show_summary", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TVMaze.URL == "" {
		return fmt.Errorf("tvmaze.url is required")
	}
	u, err := url.Parse(cfg.TVMaze.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("tvmaze.url must be an absolute URL: %s", cfg.TVMaze.URL)
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	if cfg.HTTP.Concurrency < 1 {
		return fmt.Errorf("http.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset '%s' has an empty expression", name)
		}
	}

	return nil
}
