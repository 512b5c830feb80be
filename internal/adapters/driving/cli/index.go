package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/core/ports/driving"
)

var (
	indexChunkSize    int
	indexChunkOverlap int
	indexTag          string
	indexTags         []string
	indexJSON         bool
)

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Index PDF files into the vector store",
	Long: `Index one or more PDF files so their content can be queried.

Each file is extracted page by page, split into overlapping chunks,
embedded, and stored. Re-indexing a file replaces everything previously
stored for it. When several paths are given, a failure on one file is
reported and the remaining files are still indexed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().IntVar(&indexChunkSize, "chunk-size", 0, "chunk size in characters (default from config)")
	indexCmd.Flags().IntVar(&indexChunkOverlap, "chunk-overlap", -1, "chunk overlap in characters (default from config)")
	indexCmd.Flags().StringVar(&indexTag, "tag", "", "label stamped on every indexed chunk")
	indexCmd.Flags().StringSliceVar(&indexTags, "tags", nil, "per-path labels, must match the number of paths")
	indexCmd.Flags().BoolVar(&indexJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	indexer, embedding, err := buildIndexer()
	if err != nil {
		return err
	}
	defer embedding.Close()

	opts := driving.IndexOptions{
		ChunkSize:    indexChunkSize,
		ChunkOverlap: indexChunkOverlap,
		Tag:          indexTag,
	}

	if len(args) == 1 && len(indexTags) == 0 {
		result, err := indexer.Index(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		if indexJSON {
			return printJSON(cmd, result)
		}
		cmd.Printf("Indexed %s: %d pages, %d chunks (collection %q)\n",
			result.SourcePath, result.TotalPages, result.TotalChunks, result.CollectionName)
		return nil
	}

	result, err := indexer.IndexAll(cmd.Context(), args, opts, indexTags)
	if err != nil {
		return err
	}

	if indexJSON {
		return printJSON(cmd, result)
	}

	for _, indexed := range result.Indexed {
		cmd.Printf("Indexed %s: %d pages, %d chunks\n",
			indexed.SourcePath, indexed.TotalPages, indexed.TotalChunks)
	}
	for _, failed := range result.Failed {
		cmd.Printf("Failed %s: %s\n", failed.Path, failed.Error)
	}
	cmd.Printf("Total: %d files indexed, %d failed, %d chunks\n",
		len(result.Indexed), len(result.Failed), result.TotalChunks)

	if len(result.Indexed) == 0 && len(result.Failed) > 0 {
		return fmt.Errorf("all %d files failed to index", len(result.Failed))
	}
	return nil
}
