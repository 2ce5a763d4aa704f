package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/naka-gawa/github-activities/internal/domain"
)

// WriteJSON writes the report as an indented JSON document. Aggregated
// series encode as [period_key, value] pairs.
func WriteJSON(w io.Writer, report domain.UserActivityReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
