package config

import "github.com/kelseyhightower/envconfig"

// Config holds service configuration, loaded from the environment.
type Config struct {
	Port     string `envconfig:"PORT" default:"8082"`
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
