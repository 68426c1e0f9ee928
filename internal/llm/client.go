// internal/llm/client.go
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client defines the interface for hosted text-generation providers.
type Client interface {
	// Generate sends one prompt and returns the generated text. Single
	// attempt; any retry policy belongs to the caller.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider configuration.
type Config struct {
	Provider string // "gemini" (default)
	APIKey   string
	Model    string
	BaseURL  string // overridable for tests; empty means the provider default
}

// APIError is a failure reported by the provider itself: invalid credential,
// exceeded quota, malformed request, empty candidates. Transport failures are
// returned as plain wrapped errors instead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("AI provider error (status %d): %s", e.StatusCode, e.Message)
}

// NewClient creates an LLM client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
