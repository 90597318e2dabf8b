// Package config loads paymaker settings from the environment and presets from YAML.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds settings parsed from environment variables.
type Config struct {
	// PresetPath is an optional YAML file overriding the default widget snapshot.
	PresetPath string `env:"PAYMAKER_PRESET"`
	// LogFile receives logs; the terminal belongs to the TUI.
	LogFile  string `env:"PAYMAKER_LOG_FILE"`
	LogLevel string `env:"PAYMAKER_LOG_LEVEL" envDefault:"info"`
	// FPS is the counter animation frame rate.
	FPS int `env:"PAYMAKER_FPS" envDefault:"60"`

	OtelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"paymaker"`
}

// DefaultLogFile is used when PAYMAKER_LOG_FILE is unset.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "paymaker.log")
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("config: could not load .env: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse config from environment")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return errors.Errorf("invalid PAYMAKER_FPS: %d (must be 1-240)", c.FPS)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid PAYMAKER_LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}
