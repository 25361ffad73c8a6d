package output

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pokelens/pokelens/internal/core"
)

const jsonIndent = "    "

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatDetails renders a record as JSON. Abilities always render as an
// array, and HTML characters are left unescaped.
func (f *JSONFormatter) FormatDetails(details *core.Details) (string, error) {
	if details == nil {
		return "", nil
	}

	record := *details
	if record.Abilities == nil {
		record.Abilities = []string{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if f.Indent {
		encoder.SetIndent("", jsonIndent)
	}
	if err := encoder.Encode(record); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
