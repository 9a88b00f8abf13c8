package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/hiremap/internal/hiring"
)

var (
	searchKind string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search records in the hiring document",
	Long: `Loads the document, flattens it into records and prints those whose
search text contains the query. Matching is case-insensitive. Without a
query every record of the selected type is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "type", "t", "", "only show one record type (company, job_posting, promise, vouch, personal_vouch)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind, err := hiring.ParseKind(searchKind)
	if err != nil {
		return fmt.Errorf("type flag: %w", err)
	}
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	results := hiring.Filter(records, query, kind)

	if searchJSON {
		return outputJSON(cmd, results, false)
	}
	if len(results) == 0 {
		cmd.Println(noResultsText)
		return nil
	}
	for i, rec := range results {
		printRecord(cmd, i+1, rec)
	}
	cmd.Println()
	cmd.Printf("%s of %s records\n", humanize.Comma(int64(len(results))), humanize.Comma(int64(len(records))))
	return nil
}
