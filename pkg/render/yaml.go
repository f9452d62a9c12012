package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/diagstyle/pkg/diagstyle"
)

// YAML renders records as a YAML document that diagstyle.Table can read
// back as overrides.
type YAML struct{}

// NewYAML creates a YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

type yamlOutput struct {
	Overrides []diagstyle.Record `yaml:"overrides"`
}

// Render formats records as YAML, sorted by index.
func (y *YAML) Render(records []diagstyle.Record) string {
	data, err := yaml.Marshal(yamlOutput{Overrides: SortRecords(records)})
	if err != nil {
		return fmt.Sprintf("# error: %v\n", err)
	}
	return string(data)
}
