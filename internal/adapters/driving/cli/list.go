package cli

import (
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the indexed PDF documents",
	Long: `List the documents in the collection with their index-time stats.

A persistence directory that was never created yields an empty listing.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the listing as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	listing, err := buildLibrary().List(cmd.Context(), persistDir(), collection())
	if err != nil {
		return err
	}

	if listJSON {
		return printJSON(cmd, listing)
	}

	if len(listing.Documents) == 0 {
		cmd.Println("No documents indexed.")
		return nil
	}

	cmd.Printf("Collection %q (%d chunks):\n\n", listing.CollectionName, listing.TotalChunks)
	for _, docID := range listing.Documents {
		details := listing.DocumentDetails[docID]
		cmd.Printf("  %s: %d pages, %d chunks", docID, details.Pages, details.Chunks)
		if details.Tag != "" {
			cmd.Printf(", tag %q", details.Tag)
		}
		if details.UploadTimestamp != "" {
			cmd.Printf(", indexed %s", details.UploadTimestamp)
		}
		cmd.Println()
	}
	return nil
}
