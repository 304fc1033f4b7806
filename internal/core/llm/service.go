package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// Service wraps an LLM provider with a reply cache.
type Service struct {
	provider LLMProvider
	cache    Cache
	ttl      time.Duration
}

// NewService creates the service. cache may be nil, which disables caching.
func NewService(provider LLMProvider, cache Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{provider: provider, cache: cache, ttl: ttl}
}

// Result is a generated reply and whether it came from the cache.
type Result struct {
	Text   string
	Cached bool
}

// Generate returns a cached reply for identical prompts or asks the provider.
// Cache failures are logged and otherwise ignored.
func (s *Service) Generate(ctx context.Context, systemPrompt, userMessage string) (*Result, error) {
	if s.provider == nil {
		return nil, errors.New("llm provider not configured")
	}

	key := cacheKey(systemPrompt, userMessage)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			return &Result{Text: cached, Cached: true}, nil
		case !errors.Is(err, ErrMiss):
			log.Warn().Err(err).Msg("llm cache read failed")
		}
	}

	text, err := s.provider.GenerateResponse(ctx, systemPrompt, userMessage)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			log.Warn().Err(err).Msg("llm cache write failed")
		}
	}
	return &Result{Text: text}, nil
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.GetProviderName()
}

func cacheKey(systemPrompt, userMessage string) string {
	sum := sha256.Sum256([]byte(systemPrompt + "\x00" + userMessage))
	return hex.EncodeToString(sum[:])
}
