package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/hiremap/internal/app"
	"github.com/five82/hiremap/internal/hiring"
)

const (
	errorPrefix   = "Error loading data: "
	noResultsText = "No results found."
)

// loadRecords loads the configured document. Load failures are printed to
// stderr and reported as errReported.
func loadRecords(cmd *cobra.Command) ([]hiring.Record, error) {
	cfg, err := app.LoadConfig(appOptions())
	if err != nil {
		return nil, err
	}
	loader, err := app.NewLoader(cfg)
	if err == nil {
		var records []hiring.Record
		records, err = loader.Load(cmd.Context())
		if err == nil {
			log.Printf("loaded %d records from %s", len(records), cfg.Source)
			return records, nil
		}
	}
	cmd.PrintErrln(errorPrefix + err.Error())
	return nil, errReported
}

type recordJSON struct {
	Kind        hiring.Kind `json:"kind"`
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title"`
	Parent      string      `json:"parent,omitempty"`
	Details     []string    `json:"details,omitempty"`
	Description string      `json:"description,omitempty"`
	SearchText  string      `json:"search_text,omitempty"`
}

func toJSON(rec hiring.Record, withSearchText bool) recordJSON {
	out := recordJSON{
		Kind:        rec.Kind,
		ID:          rec.ID,
		Title:       rec.DisplayTitle(),
		Parent:      rec.Parent,
		Details:     hiring.Details(rec.Entity),
		Description: hiring.Description(rec.Entity),
	}
	if withSearchText {
		out.SearchText = rec.SearchText
	}
	return out
}

func outputJSON(cmd *cobra.Command, records []hiring.Record, withSearchText bool) error {
	out := make([]recordJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, toJSON(rec, withSearchText))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printRecord(cmd *cobra.Command, n int, rec hiring.Record) {
	cmd.Printf("  [%d] %s (%s)\n", n, rec.DisplayTitle(), rec.Kind)
	if rec.Parent != "" {
		cmd.Printf("      %s\n", rec.Parent)
	}
	if details := hiring.Details(rec.Entity); len(details) > 0 {
		cmd.Printf("      %s\n", strings.Join(details, " • "))
	}
}
