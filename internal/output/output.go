package output

import (
	"fmt"
	"strings"

	"github.com/pokelens/pokelens/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// Formatter renders a pokemon record.
type Formatter interface {
	FormatDetails(details *core.Details) (string, error)
}

// ParseFormat validates and normalizes a format string. The empty string
// selects JSON.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	case string(FormatTable):
		return FormatTable, nil
	case string(FormatMarkdown), "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &JSONFormatter{Indent: true}
	}
}

func abilityList(details *core.Details) string {
	if len(details.Abilities) == 0 {
		return "-"
	}
	return strings.Join(details.Abilities, ", ")
}
