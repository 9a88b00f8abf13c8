package cli

import (
	"github.com/spf13/cobra"
)

var flattenJSON bool

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Print every record of the hiring document",
	Long: `Flattens the document into records in display order: each company
followed by its job postings and their promises and personal vouches, then
the top-level collections. With --json the search text of each record is
included.`,
	Args: cobra.NoArgs,
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().BoolVar(&flattenJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, _ []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	if flattenJSON {
		return outputJSON(cmd, records, true)
	}
	if len(records) == 0 {
		cmd.Println(noResultsText)
		return nil
	}
	for i, rec := range records {
		printRecord(cmd, i+1, rec)
	}
	return nil
}
