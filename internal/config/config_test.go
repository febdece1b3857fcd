package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// validConfig returns a config that passes validation.
func validConfig() *Config {
	return &Config{
		GeminiAPIKey:    "test-key",
		ModelName:       DefaultModelName,
		Temperature:     DefaultTemperature,
		TopP:            DefaultTopP,
		TopK:            DefaultTopK,
		MaxOutputTokens: DefaultMaxOutputTokens,
		FAQPath:         "config/faqs.txt",
		DatabasePath:    "data/conversations.db",
		ListenAddr:      ":5000",
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() on valid config = %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing api key", func(c *Config) { c.GeminiAPIKey = "" }, ErrMissingAPIKey},
		{"whitespace api key", func(c *Config) { c.GeminiAPIKey = "  " }, ErrMissingAPIKey},
		{"empty model name", func(c *Config) { c.ModelName = "" }, ErrInvalidModelName},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }, ErrInvalidTemperature},
		{"temperature negative", func(c *Config) { c.Temperature = -0.1 }, ErrInvalidTemperature},
		{"top_p out of range", func(c *Config) { c.TopP = 1.5 }, ErrInvalidTopP},
		{"top_k zero", func(c *Config) { c.TopK = 0 }, ErrInvalidTopK},
		{"max tokens zero", func(c *Config) { c.MaxOutputTokens = 0 }, ErrInvalidMaxTokens},
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }, ErrInvalidListenAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); !errors.Is(err, ErrConfigNil) {
		t.Errorf("Validate() on nil = %v, want %v", err, ErrConfigNil)
	}
}

func TestMarshalJSONMasksAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.GeminiAPIKey = "super-secret-key"

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "super-secret-key") {
		t.Errorf("marshaled config leaks API key: %s", data)
	}
	if !strings.Contains(string(data), `"***"`) {
		t.Errorf("marshaled config missing mask: %s", data)
	}
}

func TestLogLevelSlog(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.LogLevelSlog(); got != tt.want {
			t.Errorf("LogLevelSlog(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
