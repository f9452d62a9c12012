package render

import (
	"encoding/json"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

// JSON renders records as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string             `json:"version"`
	Styles  []diagstyle.Record `json:"styles"`
}

// Render formats records as JSON, sorted by index.
func (j *JSON) Render(records []diagstyle.Record) string {
	out := jsonOutput{
		Version: "1",
		Styles:  SortRecords(records),
	}
	if out.Styles == nil {
		out.Styles = []diagstyle.Record{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
