package config

import (
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns the first violation.
// Errors wrap the package sentinel errors for errors.Is() checks.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY in the environment", ErrMissingAPIKey)
	}

	if strings.TrimSpace(c.ModelName) == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidModelName)
	}

	// Temperature range: 0.0 (deterministic) to 2.0 (maximum creativity)
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("%w: must be between 0.0 and 2.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	if c.TopP < 0.0 || c.TopP > 1.0 {
		return fmt.Errorf("%w: must be between 0.0 and 1.0, got %.2f", ErrInvalidTopP, c.TopP)
	}

	if c.TopK < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidTopK, c.TopK)
	}

	if c.MaxOutputTokens < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidMaxTokens, c.MaxOutputTokens)
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("%w: must not be empty", ErrInvalidListenAddr)
	}

	return nil
}
