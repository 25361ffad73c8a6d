package output

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pokelens/pokelens/internal/core"
)

// YAMLFormatter renders results as YAML, keeping the JSON key order.
type YAMLFormatter struct{}

// FormatDetails renders a record as YAML.
func (f *YAMLFormatter) FormatDetails(details *core.Details) (string, error) {
	if details == nil {
		return "", nil
	}

	record := *details
	if record.Abilities == nil {
		record.Abilities = []string{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(4)
	if err := encoder.Encode(record); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
