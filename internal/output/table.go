package output

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pokelens/pokelens/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatDetails renders a record as a two-column table.
func (f *TableFormatter) FormatDetails(details *core.Details) (string, error) {
	if details == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"pokemon_name", details.PokemonName})
	t.AppendRow(table.Row{"base_experience", strconv.Itoa(details.BaseExperience)})
	t.AppendRow(table.Row{"height", strconv.Itoa(details.Height)})
	t.AppendRow(table.Row{"weight", strconv.Itoa(details.Weight)})
	t.AppendRow(table.Row{"abilities", abilityList(details)})

	return t.Render(), nil
}
