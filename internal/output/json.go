package output

import (
	"encoding/json"
	"io"

	"github.com/inittide/tidectl/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version  string           `json:"version"`
	File     string           `json:"file"`
	Schema   string           `json:"schema"`
	Findings []*types.Finding `json:"findings"`
	Summary  types.Summary    `json:"summary"`
	Result   string           `json:"result"`
}

// Render writes the validation report in JSON format
func (r *JSONRenderer) Render(w io.Writer, report *types.ValidationReport) error {
	output := jsonOutput{
		Version:  "1.0",
		File:     report.File,
		Schema:   report.Schema,
		Findings: report.Findings,
		Summary:  report.Summary,
		Result:   report.Result,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
