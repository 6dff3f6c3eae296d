package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/missionboard/internal/missions"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders records as a bordered static grid. A non-positive width lets
// the table size itself from the column widths.
func Table(records []missions.Mission, width int) string {
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		row := Row(m)
		for i, col := range Columns {
			row[i] = Truncate(row[i], col.Width)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}

// Truncate shortens value to at most width cells, ending with an ellipsis
// when it had to cut.
func Truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	runes := []rune(value)
	if width == 1 {
		return "…"
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
