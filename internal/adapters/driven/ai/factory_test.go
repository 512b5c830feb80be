package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdforacle/pdforacle/internal/config"
	"github.com/pdforacle/pdforacle/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&config.Config{
			EmbeddingProvider: ProviderOpenAI,
			OpenAIAPIKey:      "sk-test",
		})
		require.NoError(t, err)
		defer svc.Close()
		assert.Equal(t, "text-embedding-3-small", svc.ModelName())
		assert.Equal(t, 1536, svc.Dimensions())
	})

	t.Run("cohere", func(t *testing.T) {
		svc, err := CreateEmbeddingService(&config.Config{
			EmbeddingProvider: ProviderCohere,
			CohereAPIKey:      "co-test",
			EmbeddingModel:    "embed-english-light-v3.0",
		})
		require.NoError(t, err)
		defer svc.Close()
		assert.Equal(t, "embed-english-light-v3.0", svc.ModelName())
		assert.Equal(t, 384, svc.Dimensions())
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := CreateEmbeddingService(&config.Config{EmbeddingProvider: ProviderOpenAI})
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})

	t.Run("anthropic has no embeddings", func(t *testing.T) {
		_, err := CreateEmbeddingService(&config.Config{
			EmbeddingProvider: ProviderAnthropic,
			AnthropicAPIKey:   "ak-test",
		})
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := CreateEmbeddingService(&config.Config{EmbeddingProvider: "huggingface"})
		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	})
}

func TestCreateLLMService(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		svc, err := CreateLLMService(&config.Config{
			LLMProvider:  ProviderOpenAI,
			OpenAIAPIKey: "sk-test",
			LLMModel:     "gpt-4o",
		})
		require.NoError(t, err)
		defer svc.Close()
		assert.Equal(t, "gpt-4o", svc.ModelName())
	})

	t.Run("anthropic", func(t *testing.T) {
		svc, err := CreateLLMService(&config.Config{
			LLMProvider:     ProviderAnthropic,
			AnthropicAPIKey: "ak-test",
		})
		require.NoError(t, err)
		defer svc.Close()
		assert.Equal(t, "claude-3-5-sonnet-latest", svc.ModelName())
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := CreateLLMService(&config.Config{LLMProvider: ProviderAnthropic})
		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := CreateLLMService(&config.Config{LLMProvider: "ollama"})
		assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	})
}
