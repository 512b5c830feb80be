package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/pdf/tabula"
	"github.com/pdforacle/pdforacle/internal/chunker"
)

var (
	chunksChunkSize    int
	chunksChunkOverlap int
	chunksJSON         bool
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [path]",
	Short: "Preview how a PDF would be chunked",
	Long: `Extract and chunk a PDF without embedding or storing anything.

Useful for tuning chunk size and overlap before indexing.`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().IntVar(&chunksChunkSize, "chunk-size", 0, "chunk size in characters (default from config)")
	chunksCmd.Flags().IntVar(&chunksChunkOverlap, "chunk-overlap", -1, "chunk overlap in characters (default from config)")
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output chunks as JSON")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	loaded, err := tabula.NewLoader().Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	size := chunksChunkSize
	if size <= 0 {
		size = cfg.ChunkSize
	}
	overlap := chunksChunkOverlap
	if overlap < 0 {
		overlap = cfg.ChunkOverlap
	}

	chunks := chunker.New(
		chunker.WithChunkSize(size),
		chunker.WithOverlap(overlap),
	).Chunk(loaded.Pages)

	if chunksJSON {
		return printJSON(cmd, chunks)
	}

	cmd.Printf("%s: %d pages, %d chunks (size %d, overlap %d)\n\n",
		loaded.SourcePath, loaded.TotalPages, len(chunks), size, overlap)
	for _, chunk := range chunks {
		cmd.Printf("--- p. %d #%d", chunk.Page, chunk.ChunkIndex)
		if chunk.Section != "" {
			cmd.Printf(" [%s]", chunk.Section)
		}
		cmd.Printf(" (%d chars)\n%s\n\n", len(chunk.Content), chunk.Content)
	}
	return nil
}
