// Package cli provides the command line interface for pdforacle.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/ai"
	"github.com/pdforacle/pdforacle/internal/adapters/driven/pdf/tabula"
	"github.com/pdforacle/pdforacle/internal/adapters/driven/storage/sqlite"
	"github.com/pdforacle/pdforacle/internal/config"
	"github.com/pdforacle/pdforacle/internal/core/ports/driven"
	"github.com/pdforacle/pdforacle/internal/core/services"
	"github.com/pdforacle/pdforacle/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// cfg is the loaded process configuration, set by Execute.
var cfg *config.Config

// Persistent flags shared by every command.
var (
	verbose        bool
	persistDirFlag string
	collectionFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pdforacle",
	Short: "Index PDF documents and answer questions over them",
	Long: `pdforacle indexes PDF documents into a local vector store and answers
natural-language questions over them with page-level citations.

Indexing extracts text page by page, splits it into overlapping chunks,
embeds each chunk, and stores everything locally. Queries retrieve the
most relevant chunks and ask a chat model to answer from them.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&persistDirFlag, "persist-dir", "", "vector store directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&collectionFlag, "collection", "", "vector store collection (default from config)")
}

// Execute runs the CLI with the given configuration.
func Execute(c *config.Config) error {
	cfg = c
	return rootCmd.Execute()
}

// persistDir resolves the effective persistence directory.
func persistDir() string {
	if persistDirFlag != "" {
		return persistDirFlag
	}
	return cfg.PersistDir
}

// collection resolves the effective collection name.
func collection() string {
	if collectionFlag != "" {
		return collectionFlag
	}
	return cfg.Collection
}

// storeOpener opens SQLite-backed vector store collections.
func storeOpener() driven.VectorStoreOpener {
	return func(dir, coll string) (driven.VectorStore, error) {
		return sqlite.Open(dir, coll)
	}
}

// buildIndexer wires the indexing pipeline. The embedding service is
// created from configuration and must be closed by the caller.
func buildIndexer() (*services.IndexerService, driven.EmbeddingService, error) {
	embedding, err := ai.CreateEmbeddingService(cfg)
	if err != nil {
		return nil, nil, err
	}

	indexer := services.NewIndexerService(
		tabula.NewLoader(),
		embedding,
		storeOpener(),
		services.IndexerDefaults{
			PersistDir:   persistDir(),
			Collection:   collection(),
			ChunkSize:    cfg.ChunkSize,
			ChunkOverlap: cfg.ChunkOverlap,
		},
	)
	return indexer, embedding, nil
}

// buildQuery wires the question-answering pipeline. Both returned
// services must be closed by the caller.
func buildQuery() (*services.QueryService, driven.EmbeddingService, driven.LLMService, error) {
	embedding, err := ai.CreateEmbeddingService(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	llm, err := ai.CreateLLMService(cfg)
	if err != nil {
		embedding.Close()
		return nil, nil, nil, err
	}

	query := services.NewQueryService(storeOpener(), embedding, llm)
	return query, embedding, llm, nil
}

// buildLibrary wires the listing and removal service. It needs no AI
// credentials.
func buildLibrary() *services.LibraryService {
	return services.NewLibraryService(storeOpener())
}

// printJSON renders v as indented JSON on the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
