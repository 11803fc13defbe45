package config

// Config represents the complete configuration structure
type Config struct {
	Sortly  SortlyConfig  `mapstructure:"sortly"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SortlyConfig holds Sortly API connection details
type SortlyConfig struct {
	APIToken string `mapstructure:"api_token"`
	BaseURL  string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout passed to the HTTP transport
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
