package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "joke-bot" {
		t.Errorf("Expected name 'joke-bot', got '%s'", cfg.App.Name)
	}
	if cfg.App.LogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.App.LogLevel)
	}
	if cfg.Session.Category != "neutral" {
		t.Errorf("Expected category 'neutral', got '%s'", cfg.Session.Category)
	}
	if cfg.Session.Language != "en" {
		t.Errorf("Expected language 'en', got '%s'", cfg.Session.Language)
	}
	if cfg.Session.MaxSteps != 100 {
		t.Errorf("Expected max steps 100, got %d", cfg.Session.MaxSteps)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SESSION_CATEGORY", "chuck")
	t.Setenv("SESSION_LANGUAGE", "de")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Session.Category != "chuck" {
		t.Errorf("Expected category 'chuck', got '%s'", cfg.Session.Category)
	}
	if cfg.Session.Language != "de" {
		t.Errorf("Expected language 'de', got '%s'", cfg.Session.Language)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		session SessionConfig
		wantErr error
	}{
		{"valid", SessionConfig{Category: "neutral", Language: "en", MaxSteps: 100}, nil},
		{"valid all category", SessionConfig{Category: "all", Language: "es", MaxSteps: 1}, nil},
		{"unknown category", SessionConfig{Category: "dad", Language: "en", MaxSteps: 100}, ErrUnknownCategory},
		{"unknown language", SessionConfig{Category: "neutral", Language: "fr", MaxSteps: 100}, ErrUnknownLanguage},
		{"zero max steps", SessionConfig{Category: "neutral", Language: "en", MaxSteps: 0}, ErrInvalidMaxSteps},
		{"negative max steps", SessionConfig{Category: "neutral", Language: "en", MaxSteps: -5}, ErrInvalidMaxSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Session: tt.session}
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
