package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TVMaze  TVMazeConfig  `mapstructure:"tvmaze"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TVMazeConfig holds TVMaze API connection details
type TVMazeConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// HTTPConfig contains transport settings for API requests
type HTTPConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
}

// FilterConfig contains named filter presets
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// OutputConfig controls what the console formatter prints
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
	ShowSummary bool `mapstructure:"show_summary"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
