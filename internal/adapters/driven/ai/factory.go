// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	cohereembed "github.com/pdforacle/pdforacle/internal/adapters/driven/embedding/cohere"
	openaiembed "github.com/pdforacle/pdforacle/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/pdforacle/pdforacle/internal/adapters/driven/llm/anthropic"
	openaillm "github.com/pdforacle/pdforacle/internal/adapters/driven/llm/openai"
	"github.com/pdforacle/pdforacle/internal/config"
	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderCohere    = "cohere"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateEmbeddingService creates the embedding service selected by the
// configuration.
func CreateEmbeddingService(cfg *config.Config) (driven.EmbeddingService, error) {
	switch cfg.EmbeddingProvider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", domain.ErrEmbeddingUnavailable)
		}
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.EmbeddingModel,
		})

	case ProviderCohere:
		if cfg.CohereAPIKey == "" {
			return nil, fmt.Errorf("%w: COHERE_API_KEY is not set", domain.ErrEmbeddingUnavailable)
		}
		return cohereembed.NewEmbeddingService(cohereembed.Config{
			APIKey: cfg.CohereAPIKey,
			Model:  cfg.EmbeddingModel,
		})

	case ProviderAnthropic:
		// Anthropic does not offer an embeddings endpoint.
		return nil, fmt.Errorf("%w: anthropic does not support embeddings, use openai or cohere",
			domain.ErrEmbeddingUnavailable)

	default:
		return nil, fmt.Errorf("%w: unsupported embedding provider: %s",
			domain.ErrEmbeddingUnavailable, cfg.EmbeddingProvider)
	}
}

// CreateLLMService creates the LLM service selected by the configuration.
func CreateLLMService(cfg *config.Config) (driven.LLMService, error) {
	switch cfg.LLMProvider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", domain.ErrLLMUnavailable)
		}
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.LLMModel,
		})

	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", domain.ErrLLMUnavailable)
		}
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.LLMModel,
		})

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s",
			domain.ErrLLMUnavailable, cfg.LLMProvider)
	}
}

// ValidateEmbeddingService pings the embedding service with a bounded
// timeout. Intended for use before long indexing runs.
func ValidateEmbeddingService(svc driven.EmbeddingService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrEmbeddingUnavailable, err)
	}
	return nil
}

// ValidateLLMService pings the LLM service with a bounded timeout.
func ValidateLLMService(svc driven.LLMService) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: service unreachable (%w)", domain.ErrLLMUnavailable, err)
	}
	return nil
}
