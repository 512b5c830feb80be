package cli

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [document-id]",
	Short: "Remove an indexed document",
	Long: `Remove every chunk of one document from the collection.

The document id is the one shown by the list command, usually the PDF
file name. Removing an unknown id deletes nothing and is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	removed, err := buildLibrary().Remove(cmd.Context(), args[0], persistDir(), collection())
	if err != nil {
		return err
	}

	if removed == 0 {
		cmd.Printf("No chunks found for %q.\n", args[0])
		return nil
	}
	cmd.Printf("Removed %d chunks of %q.\n", removed, args[0])
	return nil
}
