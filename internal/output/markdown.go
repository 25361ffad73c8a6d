package output

import (
	"fmt"
	"strings"

	"github.com/pokelens/pokelens/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatDetails renders a record as Markdown.
func (f *MarkdownFormatter) FormatDetails(details *core.Details) (string, error) {
	if details == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeMarkdownCell(details.PokemonName)))
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| pokemon_name | %s |\n", escapeMarkdownCell(details.PokemonName)))
	sb.WriteString(fmt.Sprintf("| base_experience | %d |\n", details.BaseExperience))
	sb.WriteString(fmt.Sprintf("| height | %d |\n", details.Height))
	sb.WriteString(fmt.Sprintf("| weight | %d |\n", details.Weight))
	sb.WriteString(fmt.Sprintf("| abilities | %s |\n", escapeMarkdownCell(abilityList(details))))

	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
