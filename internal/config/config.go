// Package config builds the immutable process configuration.
//
// Precedence, highest first: explicit call arguments (handled by the
// services), environment variables, the TOML config file, hard defaults.
// The struct is constructed once at process start and passed down; the
// core never reads the environment at call depth.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Hard defaults.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultCollection   = "pdforacle"

	DefaultLLMProvider       = "openai"
	DefaultEmbeddingProvider = "openai"
)

// ValueSource supplies configuration values below environment precedence,
// typically the TOML config file store. A nil source is allowed.
type ValueSource interface {
	GetString(key string) string
	GetInt(key string) int
}

// Config is the read-only process configuration.
type Config struct {
	PersistDir   string
	Collection   string
	ChunkSize    int
	ChunkOverlap int

	LLMProvider string
	LLMModel    string

	EmbeddingProvider string
	EmbeddingModel    string

	OpenAIAPIKey    string
	AnthropicAPIKey string
	CohereAPIKey    string
}

// LoadEnvFiles loads .env files from the well-known locations before any
// environment variable is read. Missing files are ignored; existing
// process environment always wins over file contents.
func LoadEnvFiles() {
	home, err := os.UserHomeDir()
	if err == nil {
		for _, p := range []string{
			filepath.Join(home, ".config", "pdforacle", ".env"),
			filepath.Join(home, ".pdforacle", ".env"),
		} {
			_ = godotenv.Load(p)
		}
	}
	_ = godotenv.Load()
}

// Load builds the configuration from the environment and an optional
// lower-precedence value source.
func Load(fileStore ValueSource) *Config {
	cfg := &Config{
		PersistDir:        stringValue("PDFORACLE_PERSIST_DIR", fileStore, "persist_dir", defaultPersistDir()),
		Collection:        stringValue("PDFORACLE_COLLECTION", fileStore, "collection", DefaultCollection),
		ChunkSize:         intValue("PDFORACLE_CHUNK_SIZE", fileStore, "chunk_size", DefaultChunkSize, 1),
		ChunkOverlap:      intValue("PDFORACLE_CHUNK_OVERLAP", fileStore, "chunk_overlap", DefaultChunkOverlap, 0),
		LLMProvider:       stringValue("PDFORACLE_LLM_PROVIDER", fileStore, "llm.provider", DefaultLLMProvider),
		LLMModel:          stringValue("PDFORACLE_LLM_MODEL", fileStore, "llm.model", ""),
		EmbeddingProvider: stringValue("PDFORACLE_EMBEDDING_PROVIDER", fileStore, "embedding.provider", DefaultEmbeddingProvider),
		EmbeddingModel:    stringValue("PDFORACLE_EMBEDDING_MODEL", fileStore, "embedding.model", ""),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		CohereAPIKey:      os.Getenv("COHERE_API_KEY"),
	}
	return cfg
}

func defaultPersistDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdforacle_index"
	}
	return filepath.Join(home, ".pdforacle", "index")
}

func stringValue(envKey string, store ValueSource, storeKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if store != nil {
		if v := store.GetString(storeKey); v != "" {
			return v
		}
	}
	return fallback
}

// intValue reads an integer with a lower bound. Malformed or out-of-range
// values fall back to the default rather than erroring.
func intValue(envKey string, store ValueSource, storeKey string, fallback, minimum int) int {
	if v := os.Getenv(envKey); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= minimum {
			return n
		}
		return fallback
	}
	if store != nil {
		if n := store.GetInt(storeKey); n >= minimum && n != 0 {
			return n
		}
	}
	return fallback
}
