// Package cli provides output helpers for the wordsim command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/word-vector-sim/internal/models"
)

// OutputFormat is the format for query result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteQueryResults writes a query response to w in the given format.
func WriteQueryResults(w io.Writer, resp *models.QueryResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		writeQueryResultsText(w, resp)
		return nil
	}
}

func writeQueryResultsText(w io.Writer, resp *models.QueryResponse) {
	fmt.Fprintf(w, "\nTop %d related word(s) for [%s] in %dms:\n\n",
		len(resp.CommonWords), strings.Join(resp.InputWords, ", "), resp.QueryTimeMs)
	for i, res := range resp.CommonWords {
		fmt.Fprintf(w, "  %2d. %-20s %.4f\n", i+1, res.Word, res.SimilarityScore)
	}
	fmt.Fprintln(w)
}
