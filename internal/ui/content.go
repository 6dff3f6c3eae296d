package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/missionboard/internal/render"
	"github.com/five82/missionboard/internal/viewstate"
)

// tableColumns scales the fixed grid columns down to fit width. A
// non-positive width keeps the natural sizes.
func tableColumns(width int) []table.Column {
	cols := make([]table.Column, len(render.Columns))
	natural := 0
	for i, c := range render.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
		natural += c.Width
	}
	// Each cell carries one column of padding on either side.
	available := width - 2*len(cols)
	if width <= 0 || available >= natural {
		return cols
	}
	for i := range cols {
		cols[i].Width = max(cols[i].Width*available/natural, MinColumnWidth)
	}
	return cols
}

// contentSize returns the inner size of the content box.
func (m Model) contentSize() (int, int) {
	w := max(m.width-2, 0)
	h := max(m.height-HeaderHeight-2, 0)
	return w, h
}

// syncContent rebuilds the active pane from the controller. Called after
// every preference change, fetch outcome, resize or theme switch.
func (m *Model) syncContent() {
	if !m.ready {
		return
	}
	w, h := m.contentSize()
	displayed := m.view.DisplayedSet()

	switch m.view.Preferences().Mode {
	case viewstate.ModeTable:
		rows := make([]table.Row, 0, len(displayed))
		for _, rec := range displayed {
			rows = append(rows, table.Row(render.Row(rec)))
		}
		m.table.SetColumns(tableColumns(w))
		m.table.SetRows(rows)
		m.table.SetWidth(w)
		m.table.SetHeight(h)
		if m.table.Cursor() >= len(rows) {
			m.table.GotoBottom()
		}
	case viewstate.ModeRaw:
		out, err := render.Raw(displayed)
		if err != nil {
			m.notice = err.Error()
			out = nil
		}
		m.viewport.Width, m.viewport.Height = w, h
		m.viewport.SetContent(lipgloss.NewStyle().Width(w).Render(string(out)))
	default:
		m.viewport.Width, m.viewport.Height = w, h
		m.viewport.SetContent(m.renderCards(w))
	}
}

func (m Model) renderCards(width int) string {
	styles := m.theme.Styles()
	cardWidth := max(width-2, CardMinWidth)
	bodyWidth := max(cardWidth-4, CardMinWidth)

	displayed := m.view.DisplayedSet()
	cards := make([]string, 0, len(displayed))
	for _, rec := range displayed {
		body := render.Markdown(render.CardMarkdown(rec), bodyWidth, m.theme.Markdown)
		cards = append(cards, styles.Card.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderMain renders header, command bar and the content box.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent picks the full-replacement presentation or the active pane.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := m.height - HeaderHeight

	var placeholder string
	switch {
	case m.loading():
		placeholder = m.spinner.View() + " " + styles.WarningText.Bold(true).Render(render.LoadingText)
	case m.snapshot.Err() != nil:
		placeholder = lipgloss.JoinVertical(lipgloss.Center,
			styles.DangerText.Render(render.ErrorText),
			"",
			styles.MutedText.Render(render.Truncate(m.snapshot.Err().Error(), max(m.width-4, 10))),
			styles.FaintText.Render("press r to retry"),
		)
	case m.view.Len() == 0:
		placeholder = styles.MutedText.Bold(true).Render(render.EmptyText)
	}
	if placeholder != "" {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, placeholder)
	}

	var body string
	if m.view.Preferences().Mode == viewstate.ModeTable {
		body = m.table.View()
	} else {
		body = m.viewport.View()
	}
	return m.renderTitledBox(m.contentTitle(), body, m.width, height)
}

// contentTitle is "Missions (n)" or "Missions (shown/total)" while filtered.
func (m Model) contentTitle() string {
	total := m.view.Total()
	shown := m.view.Len()
	mode := m.view.Preferences().Mode.String()
	if shown == total {
		return fmt.Sprintf("Missions (%d) %s", total, mode)
	}
	return fmt.Sprintf("Missions (%d/%d) %s", shown, total, mode)
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bg := NewBgStyle(m.theme.FocusBg)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderFocus))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = render.Truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	clip := lipgloss.NewStyle().MaxWidth(innerWidth)
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = clip.Render(contentLines[i])
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				bg.FillLine(line, innerWidth)+
				bg.Render("│", borderStyle))
	}
	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
