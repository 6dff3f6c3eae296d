package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/missionboard/internal/render"
	"github.com/five82/missionboard/internal/state"
	"github.com/five82/missionboard/internal/viewstate"
)

const logo = "missionboard"

// renderHeader renders the status line: fetch state, counts and the active
// view preferences.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render(logo, styles.Logo)}
	parts = append(parts, m.fetchStatus(styles, bg))

	if m.snapshot.HasResult {
		parts = append(parts,
			bg.Render("Missions:", styles.MutedText)+bg.Space()+
				bg.Render(m.countLabel(), styles.Text))
	}

	prefs := m.view.Preferences()
	mode := prefs.Mode.String()
	parts = append(parts, styles.ModeStyle(mode).Render(strings.ToUpper(mode)))
	parts = append(parts,
		bg.Render("Sort:", styles.MutedText)+bg.Space()+
			bg.Render(prefs.Sort.Label(), styles.Text))
	parts = append(parts, m.filterStatus(prefs.Filter, styles, bg))

	if m.width >= LayoutCompactWidth && m.endpoint != "" {
		parts = append(parts, bg.Render(render.Truncate(m.endpoint, 40), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) fetchStatus(styles Styles, bg BgStyle) string {
	switch {
	case m.loading():
		return bg.Render("● Fetching", styles.WarningText.Bold(true))
	case m.snapshot.Phase == state.PhaseFailed:
		return bg.Render("● Failed", styles.DangerText)
	case m.snapshot.Phase == state.PhaseSucceeded:
		age := humanize.RelTime(m.snapshot.LastUpdated, m.now(), "ago", "from now")
		return bg.Render("● Fetched", styles.SuccessText) + bg.Space() + bg.Render(age, styles.MutedText)
	}
	return bg.Render("● Idle", styles.MutedText)
}

func (m Model) countLabel() string {
	total := m.view.Total()
	if shown := m.view.Len(); shown != total {
		return fmt.Sprintf("%d/%d", shown, total)
	}
	if reported := m.snapshot.Result.TotalCount; reported > total {
		return fmt.Sprintf("%d of %s", total, humanize.Comma(int64(reported)))
	}
	return fmt.Sprintf("%d", total)
}

func (m Model) filterStatus(filter viewstate.Filter, styles Styles, bg BgStyle) string {
	label := bg.Render("Filter:", styles.MutedText) + bg.Space()
	if !filter.Active() {
		return label + bg.Render("None", styles.Text)
	}
	query := filter.Query
	if query == "" {
		query = "…"
	}
	return label + bg.Render(filter.Field.Label(), styles.Text) + bg.Space() +
		bg.Render(fmt.Sprintf("%q", render.Truncate(query, 24)), styles.AccentText)
}

// renderCommandBar renders the key hints, or the latest notice when one is
// pending.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.notice != "" {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Surface)).
			Width(m.width).
			Padding(0, 1).
			Render(bg.Render(m.notice, styles.InfoText))
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		segments = append(segments, bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(segments, "  "))
}
