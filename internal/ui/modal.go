package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/missionboard/internal/viewstate"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// filterSubmittedMsg carries the query entered in the filter modal.
type filterSubmittedMsg struct {
	field viewstate.Field
	query string
}

// filterModal edits the query of the active filter field.
type filterModal struct {
	field viewstate.Field
	input textinput.Model
}

func newFilterModal(field viewstate.Field, query string) *filterModal {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "substring, case-insensitive"
	in.CharLimit = 200
	in.SetValue(query)
	in.CursorEnd()
	in.Focus()
	return &filterModal{field: field, input: in}
}

func (f *filterModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Escape):
			return f, nil, true
		case key.Matches(km, keys.Confirm):
			submitted := filterSubmittedMsg{field: f.field, query: f.input.Value()}
			return f, func() tea.Msg { return submitted }, true
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd, false
}

func (f *filterModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	f.input.PromptStyle = styles.AccentText
	f.input.TextStyle = styles.Text
	f.input.PlaceholderStyle = styles.FaintText
	f.input.Width = 40

	title := styles.Text.Bold(true).Render("Filter by " + f.field.Label())
	hint := styles.MutedText.Render("enter apply · esc cancel")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", f.input.View(), "", hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(52).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
