package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Providers understood by NewClient.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// DefaultOllamaURL is the OpenAI-compatible endpoint of a local Ollama server.
const DefaultOllamaURL = "http://localhost:11434/v1"

// Client defines the interface for LLM providers.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config holds configuration for the category suggester.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// NewClient creates an LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
		return newOpenAIClient(cfg), nil
	case ProviderOllama:
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultOllamaURL
		}
		if cfg.APIKey == "" {
			// Ollama ignores the key but the client requires one.
			cfg.APIKey = "ollama"
		}
		if cfg.Model == "" {
			cfg.Model = "llama3.2"
		}
		return newOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
