package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/core/domain"
	"github.com/pdforacle/pdforacle/internal/core/services"
)

var (
	queryK        int
	queryDocument string
	queryTag      string
	queryPageMin  int
	queryPageMax  int
	queryJSON     bool
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Answer a question from the indexed PDFs",
	Long: `Answer a natural-language question using the indexed PDF content.

Retrieval can be narrowed to one document, one tag, or a page range.
Both --page-min and --page-max must be given together. The answer is
followed by the (document, page) citations it was grounded in.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryK, "top-k", "k", services.DefaultTopK, "number of chunks to retrieve (1-100)")
	queryCmd.Flags().StringVar(&queryDocument, "document", "", "restrict retrieval to one document id")
	queryCmd.Flags().StringVar(&queryTag, "tag", "", "restrict retrieval to documents with this tag")
	queryCmd.Flags().IntVar(&queryPageMin, "page-min", 0, "restrict retrieval to pages >= page-min")
	queryCmd.Flags().IntVar(&queryPageMax, "page-max", 0, "restrict retrieval to pages <= page-max")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	var pageMin, pageMax *int
	if cmd.Flags().Changed("page-min") {
		pageMin = &queryPageMin
	}
	if cmd.Flags().Changed("page-max") {
		pageMax = &queryPageMax
	}

	filter, err := domain.BuildFilter(queryDocument, queryTag, pageMin, pageMax)
	if err != nil {
		return err
	}

	query, embedding, llm, err := buildQuery()
	if err != nil {
		return err
	}
	defer embedding.Close()
	defer llm.Close()

	result, err := query.Query(cmd.Context(), args[0], queryK, filter, persistDir(), collection())
	if err != nil {
		return err
	}

	if queryJSON {
		return printJSON(cmd, result)
	}

	cmd.Println(result.Answer)
	if len(result.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, source := range result.Sources {
			cmd.Printf("  %s, p. %d\n", source.DocumentID, source.Page)
		}
	}
	return nil
}
