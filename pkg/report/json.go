package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joacoherrero/AsuntosPublicos/pkg/gazette"
)

// IssueDump is the full JSON export of one processed issue.
type IssueDump struct {
	RunID       string                 `json:"run_id"`
	IssueNumber string                 `json:"issue_number,omitempty"`
	IssueDate   string                 `json:"issue_date,omitempty"`
	Summary     []gazette.SummaryEntry `json:"summary"`
	Documents   []ClassifiedDocument   `json:"documents"`
}

// WriteJSON writes the full issue, classification included, as indented
// JSON.
func WriteJSON(path string, dump IssueDump) error {
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal issue: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
