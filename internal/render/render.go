// Package render turns missions into text: grid rows, card markdown, the raw
// JSON dump and the static table used by the non-interactive dump command.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/viewstate"
)

// Placeholder texts for the full-replacement presentations.
const (
	LoadingText = "LOADING..."
	ErrorText   = "ERROR!"
	EmptyText   = "NO DATA"
)

// Column describes one grid column.
type Column struct {
	Key   string
	Title string
	Width int
}

// Columns is the fixed grid layout.
var Columns = []Column{
	{Key: "id", Title: "ID", Width: 9},
	{Key: "name", Title: "Name", Width: 15},
	{Key: "manufacturers", Title: "Manufacturers", Width: 20},
	{Key: "description", Title: "Description", Width: 50},
	{Key: "twitter", Title: "Twitter", Width: 20},
	{Key: "website", Title: "Website", Width: 20},
	{Key: "wikipedia", Title: "Wikipedia", Width: 20},
}

// Headers returns the column titles.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Title
	}
	return out
}

// Row returns the cell values of m in column order, each collapsed onto a
// single line.
func Row(m missions.Mission) []string {
	return []string{
		oneLine(m.ID),
		oneLine(m.Name),
		oneLine(m.Manufacturers.String()),
		oneLine(m.Description),
		oneLine(m.Twitter),
		oneLine(m.Website),
		oneLine(m.Wikipedia),
	}
}

// Raw pretty-prints {"data": records} with tab indentation.
func Raw(records []missions.Mission) ([]byte, error) {
	if records == nil {
		records = []missions.Mission{}
	}
	out, err := json.MarshalIndent(struct {
		Data []missions.Mission `json:"data"`
	}{Data: records}, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("encode raw view: %w", err)
	}
	return out, nil
}

// Options tune static rendering.
type Options struct {
	Width int
	// Style is a glamour standard style name ("dark", "light", "notty", ...).
	Style string
}

// Write renders records in mode to w. An empty set renders EmptyText in
// every mode.
func Write(w io.Writer, mode viewstate.DisplayMode, records []missions.Mission, opts Options) error {
	if !mode.Valid() {
		return fmt.Errorf("render %v: %w", mode, viewstate.ErrInvalidMode)
	}
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, EmptyText)
		return err
	}

	var body string
	switch mode {
	case viewstate.ModeRaw:
		out, err := Raw(records)
		if err != nil {
			return err
		}
		body = string(out)
	case viewstate.ModeTable:
		body = Table(records, opts.Width)
	case viewstate.ModeCard:
		body = Cards(records, opts.Width, opts.Style)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(body, "\n"))
	return err
}

func oneLine(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
