// Package provider constructs LLM clients from validated configuration.
package provider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Provider tags the supported LLM backends.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// Config selects the model backend and credentials. Constructed once at
// startup and read-only afterwards.
type Config struct {
	Provider    Provider
	Model       anthropic.Model
	Temperature float64
	APIKey      string
}

// Validate checks the construction-time invariants: a known provider tag, a
// non-blank API key, and a temperature within [0, 2]. This is the only
// credential check in the process; a key that is present but wrong fails at
// the first API call instead.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported provider: %q", c.Provider)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("api key cannot be empty or whitespace")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}
	return nil
}

// ModelOrDefault returns the configured model, or DefaultModel when unset.
func (c Config) ModelOrDefault() anthropic.Model {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// NewClient returns a client for the configured backend. Only the Anthropic
// backend is wired here; the provider tag keeps configs portable.
func NewClient(cfg Config) (*anthropic.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Provider != ProviderAnthropic {
		return nil, fmt.Errorf("provider %q is not wired in this build", cfg.Provider)
	}
	c := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &c, nil
}
