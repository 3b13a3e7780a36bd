// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. DONUT_FETCH_DELAY.
const Prefix = "DONUT"

// Config holds all settings of the storefront.
type Config struct {
	FetchDelay     time.Duration `envconfig:"FETCH_DELAY"     default:"1s"`
	SimulateOutage bool          `envconfig:"SIMULATE_OUTAGE" default:"false"`
	LogFile        string        `envconfig:"LOG_FILE"        default:"donut-shop.log"`
	LogLevel       string        `envconfig:"LOG_LEVEL"       default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT"      default:"text"`
	Theme          string        `envconfig:"THEME"           default:"glaze"`
	Greeting       string        `envconfig:"GREETING"        default:"Welcome, Jala!"`
}

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
	validThemes     = map[string]bool{"glaze": true, "rosepine": true}
)

// Load reads the optional .env files (".env" when none are given) and then
// the environment. Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.FetchDelay < 0 {
		return fmt.Errorf("fetch delay must not be negative, got %s", c.FetchDelay)
	}
	if c.LogFile == "" {
		return errors.New("log file is required")
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}
	if !validThemes[strings.ToLower(c.Theme)] {
		return fmt.Errorf("invalid theme: %s (must be glaze or rosepine)", c.Theme)
	}
	return nil
}
