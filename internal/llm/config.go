package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds provider selection and per-vendor settings.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  VendorConfig
	OpenAI     VendorConfig
	Gemini     VendorConfig
	OpenRouter VendorConfig

	Retry RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// VendorConfig is the per-vendor connection configuration. BaseURL is
// honored only by OpenAI-compatible vendors.
type VendorConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Hints are the provider and model preferences from the user config
// file. They sit between defaults and the environment: a hint overrides
// the built-in default, and any SHEETWISE_* variable overrides the hint.
type Hints struct {
	Provider string
	Model    string
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  VendorConfig{Model: "claude-haiku"},
		OpenAI:     VendorConfig{Model: "gpt-4o-mini"},
		Gemini:     VendorConfig{Model: "gemini-flash"},
		OpenRouter: VendorConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: "https://openrouter.ai/api/v1"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv builds a Config from config-file hints and SHEETWISE_*
// environment variables, falling back to defaults. Environment values
// win over hints.
func ConfigFromEnv(hints Hints) Config {
	cfg := DefaultConfig()

	if hints.Provider != "" {
		cfg.Provider = hints.Provider
	}
	if hints.Model != "" {
		// The model hint belongs to the hinted (or default) provider.
		if vc := cfg.vendor(cfg.Provider); vc != nil {
			vc.Model = hints.Model
		}
	}

	if p := os.Getenv("SHEETWISE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	readVendor := func(prefix string, vc *VendorConfig) {
		if k := os.Getenv(prefix + "_API_KEY"); k != "" {
			vc.APIKey = k
		}
		if m := os.Getenv(prefix + "_MODEL"); m != "" {
			vc.Model = m
		}
		if u := os.Getenv(prefix + "_BASE_URL"); u != "" {
			vc.BaseURL = u
		}
	}
	readVendor("SHEETWISE_ANTHROPIC", &cfg.Anthropic)
	readVendor("SHEETWISE_OPENAI", &cfg.OpenAI)
	readVendor("SHEETWISE_GEMINI", &cfg.Gemini)
	readVendor("SHEETWISE_OPENROUTER", &cfg.OpenRouter)

	return cfg
}

// vendor returns the VendorConfig for a provider name, nil for mock or
// unknown providers.
func (c *Config) vendor(provider string) *VendorConfig {
	switch provider {
	case "anthropic":
		return &c.Anthropic
	case "openai":
		return &c.OpenAI
	case "gemini":
		return &c.Gemini
	case "openrouter":
		return &c.OpenRouter
	}
	return nil
}

// DiscoverConfig probes the standard vendor key variables in priority
// order and returns a Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SHEETWISE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SHEETWISE_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SHEETWISE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("SHEETWISE_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
