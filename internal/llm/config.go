package llm

import (
	"fmt"
	"time"
)

// Provider names a text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// Config holds everything needed to build a Client.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	Endpoint string // empty uses the provider default
	Timeout  time.Duration
	LogCalls bool
}

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultOllamaModel    = "llama3.2"
)

// DefaultConfig returns a Gemini configuration with a 60s request bound.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Model:    defaultGeminiModel,
		Timeout:  60 * time.Second,
	}
}

// EffectiveEndpoint returns Endpoint or the provider default.
func (c Config) EffectiveEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaEndpoint
	}
	return defaultGeminiEndpoint
}

// EffectiveModel returns Model or the provider default.
func (c Config) EffectiveModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaModel
	}
	return defaultGeminiModel
}

// NewClient builds the Client for cfg.Provider.
func NewClient(cfg Config, observer Observer) (Client, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(cfg, observer), nil
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want %q or %q)", cfg.Provider, ProviderGemini, ProviderOllama)
	}
}
