package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/five82/missionboard/internal/missions"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle is avoided
	// because it queries the terminal, which can block inside the TUI.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

const minMarkdownWidth = 20

// Markdown renders md with glamour, falling back to the source text when
// rendering fails.
func Markdown(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := markdownRenderer(width, style)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}
	if strings.TrimSpace(style) == "" {
		style = styles.DarkStyle
	}
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	if r := mdRenderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	mdRenderers[key] = r
	return r, nil
}

// CardMarkdown is the markdown source of a mission card.
func CardMarkdown(m missions.Mission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", fallback(m.Name, "Untitled mission"))
	meta := []string{"`" + fallback(m.ID, "no id") + "`"}
	if len(m.Manufacturers) > 0 {
		meta = append(meta, m.Manufacturers.String())
	}
	b.WriteString(strings.Join(meta, " · "))
	b.WriteString("\n\n")
	if desc := strings.TrimSpace(m.Description); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	for _, link := range Links(m) {
		fmt.Fprintf(&b, "- %s: %s\n", link.Label, link.URL)
	}
	return b.String()
}

// Link is a labelled mission URL.
type Link struct {
	Label string
	URL   string
}

// Links returns the non-empty social and reference links of m.
func Links(m missions.Mission) []Link {
	var out []Link
	for _, l := range []Link{
		{"Twitter", m.Twitter},
		{"Website", m.Website},
		{"Wikipedia", m.Wikipedia},
	} {
		if strings.TrimSpace(l.URL) != "" {
			out = append(out, Link{Label: l.Label, URL: strings.TrimSpace(l.URL)})
		}
	}
	return out
}

// Cards renders every mission as a markdown card separated by rules.
func Cards(records []missions.Mission, width int, style string) string {
	parts := make([]string, 0, len(records))
	for _, m := range records {
		parts = append(parts, Markdown(CardMarkdown(m), width, style))
	}
	return strings.Join(parts, "\n\n")
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
