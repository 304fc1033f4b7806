package llm

import (
	"context"
	"fmt"
)

// LLMProvider interface untuk text-completion backends
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderConfig untuk create provider
type ProviderConfig struct {
	APIKey string
	// BaseURL points the OpenAI client at a compatible API (Groq, DeepSeek, ...).
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider returns the OpenAI-compatible provider, or an error when no
// key is configured.
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return NewOpenAIProvider(*cfg), nil
}
