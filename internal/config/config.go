package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/sonyjtp/joke-bot/internal/models"
)

var (
	ErrUnknownCategory = errors.New("unknown joke category")
	ErrUnknownLanguage = errors.New("unknown joke language")
	ErrInvalidMaxSteps = errors.New("max steps must be positive")
)

type Config struct {
	App     AppConfig     `yaml:"app" env-prefix:"APP_"`
	Session SessionConfig `yaml:"session" env-prefix:"SESSION_"`
}

type AppConfig struct {
	Name        string `yaml:"name" env:"NAME" env-default:"joke-bot"`
	Environment string `yaml:"environment" env:"ENVIRONMENT" env-default:"production"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

type SessionConfig struct {
	Category string `yaml:"category" env:"CATEGORY" env-default:"neutral"`
	Language string `yaml:"language" env:"LANGUAGE" env-default:"en"`
	// MaxSteps bounds the run loop as a guard against a routing defect,
	// not as an operational limit. 100 matches the original session cap.
	MaxSteps int `yaml:"max_steps" env:"MAX_STEPS" env-default:"100"`
}

// Load reads configuration from the YAML file named by CONFIG_PATH when set,
// otherwise from environment variables and defaults. The program has to run
// with no files present, so the file is never required.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if !models.Category(c.Session.Category).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c.Session.Category)
	}
	if !models.Language(c.Session.Language).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, c.Session.Language)
	}
	if c.Session.MaxSteps <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSteps, c.Session.MaxSteps)
	}
	return nil
}
