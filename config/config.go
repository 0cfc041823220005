package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Amadeus AmadeusConfig `yaml:"amadeus"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type AmadeusConfig struct {
	APIKey         string `yaml:"api_key" env:"AMADEUS_API_KEY"`
	APISecret      string `yaml:"api_secret" env:"AMADEUS_API_SECRET"`
	Production     bool   `yaml:"production" env:"AMADEUS_PRODUCTION" env-default:"false"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"AMADEUS_TIMEOUT_SECONDS" env-default:"30"`
	RateLimit      int    `yaml:"rate_limit" env:"AMADEUS_RATE_LIMIT" env-default:"5"`
}

// HasCredentials reports whether live API access is configured. When it is
// not, the server falls back to sample data.
func (c AmadeusConfig) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
