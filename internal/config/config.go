// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (./config.yaml)
//  3. Default values
//
// The Gemini API key is required and has no default: Load fails fast when
// it is absent so the process never starts without a working oracle.
//
// Security: the API key is masked in MarshalJSON and never logged.
// Validation: range checks live in validation.go with sentinel errors for
// Go-idiomatic checking via errors.Is().
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrMissingAPIKey indicates the Gemini API key is missing.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates the model name is empty or malformed.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidTemperature indicates the temperature value is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidTopP indicates the nucleus sampling threshold is out of range.
	ErrInvalidTopP = errors.New("invalid top_p")

	// ErrInvalidTopK indicates the top-k sampling limit is out of range.
	ErrInvalidTopK = errors.New("invalid top_k")

	// ErrInvalidMaxTokens indicates the max output tokens value is out of range.
	ErrInvalidMaxTokens = errors.New("invalid max output tokens")

	// ErrInvalidListenAddr indicates the HTTP listen address is empty.
	ErrInvalidListenAddr = errors.New("invalid listen address")
)

// Default generation parameters. These are process-wide constants of the
// deployment, not per-request knobs.
const (
	DefaultModelName       = "gemini-2.5-flash"
	DefaultTemperature     = 0.7
	DefaultTopP            = 0.95
	DefaultTopK            = 40
	DefaultMaxOutputTokens = 1024
)

// Config stores application configuration.
// SECURITY: GeminiAPIKey is explicitly masked in MarshalJSON(). When adding
// new sensitive fields, update MarshalJSON.
type Config struct {
	// Oracle configuration
	GeminiAPIKey    string  `mapstructure:"gemini_api_key" json:"gemini_api_key"` // SENSITIVE: masked in MarshalJSON
	ModelName       string  `mapstructure:"model_name" json:"model_name"`
	Temperature     float32 `mapstructure:"temperature" json:"temperature"`
	TopP            float32 `mapstructure:"top_p" json:"top_p"`
	TopK            int     `mapstructure:"top_k" json:"top_k"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens" json:"max_output_tokens"`

	// Knowledge base and storage
	FAQPath      string `mapstructure:"faq_path" json:"faq_path"`
	DatabasePath string `mapstructure:"database_path" json:"database_path"`

	// HTTP server
	ListenAddr  string   `mapstructure:"listen_addr" json:"listen_addr"`
	CORSOrigins []string `mapstructure:"cors_origins" json:"cors_origins"`

	// Logging
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" json:"log_json"`
}

// Load reads configuration from defaults, an optional config.yaml in the
// working directory, and environment variables, then validates the result.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is not an error, defaults and env apply
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"config_name", "config.yaml")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("model_name", DefaultModelName)
	viper.SetDefault("temperature", DefaultTemperature)
	viper.SetDefault("top_p", DefaultTopP)
	viper.SetDefault("top_k", DefaultTopK)
	viper.SetDefault("max_output_tokens", DefaultMaxOutputTokens)

	viper.SetDefault("faq_path", "config/faqs.txt")
	viper.SetDefault("database_path", "data/conversations.db")

	viper.SetDefault("listen_addr", ":5000")
	// React dev server origin
	viper.SetDefault("cors_origins", []string{"http://localhost:3000"})

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_json", false)
}

// bindEnvVariables binds environment variable overrides.
// The API key uses the provider's conventional variable name; everything
// else is prefixed with SUPPORTBOT_.
func bindEnvVariables() {
	_ = viper.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("model_name", "SUPPORTBOT_MODEL_NAME")
	_ = viper.BindEnv("faq_path", "SUPPORTBOT_FAQ_PATH")
	_ = viper.BindEnv("database_path", "SUPPORTBOT_DATABASE_PATH")
	_ = viper.BindEnv("listen_addr", "SUPPORTBOT_LISTEN_ADDR")
	_ = viper.BindEnv("log_level", "SUPPORTBOT_LOG_LEVEL")
}

// LogLevelSlog converts the configured log level string to a slog.Level.
// Unknown values fall back to info.
func (c *Config) LogLevelSlog() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MarshalJSON masks sensitive fields when the config is serialized,
// e.g. for debug dumps.
func (c *Config) MarshalJSON() ([]byte, error) {
	type alias Config // avoid recursion
	masked := alias(*c)
	if masked.GeminiAPIKey != "" {
		masked.GeminiAPIKey = "***"
	}
	return json.Marshal(masked)
}
