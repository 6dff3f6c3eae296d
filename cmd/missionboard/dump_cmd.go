package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/missionboard/internal/app"
	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/viewstate"
)

func newDumpCmd(g *globalFlags) *cobra.Command {
	var (
		mode   string
		sortBy string
		filter string
		find   string
		width  int
		style  string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Fetch once and print the missions in the chosen display mode",
		Example: `  missionboard dump --mode table --sort name
  missionboard dump --mode raw --filter name=sat
  missionboard dump --find manufacturer=SSL`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump, err := parseDumpFlags(mode, sortBy, filter, find)
			if err != nil {
				return err
			}
			dump.Width = width
			dump.Style = style
			return app.Dump(cmd.Context(), g.options(cmd), dump, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "card", "display mode: card, table or raw")
	cmd.Flags().StringVar(&sortBy, "sort", "none", "sort field: none, id or name")
	cmd.Flags().StringVar(&filter, "filter", "", "local filter as field=query (field is id or name)")
	cmd.Flags().StringVar(&find, "find", "", "server-side find as field=value (id, name, manufacturer, payload_id)")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width for cards and table")
	cmd.Flags().StringVar(&style, "style", "", "glamour style for cards")
	return cmd
}

func parseDumpFlags(mode, sortBy, filter, find string) (app.DumpOptions, error) {
	var dump app.DumpOptions
	var err error
	if dump.Mode, err = viewstate.ParseDisplayMode(mode); err != nil {
		return dump, fmt.Errorf("--mode: %w", err)
	}
	if dump.Sort, err = viewstate.ParseField(sortBy); err != nil {
		return dump, fmt.Errorf("--sort: %w", err)
	}
	if strings.TrimSpace(filter) != "" {
		field, query, err := splitPair(filter)
		if err != nil {
			return dump, fmt.Errorf("--filter: %w", err)
		}
		if dump.Filter.Field, err = viewstate.ParseField(field); err != nil {
			return dump, fmt.Errorf("--filter: %w", err)
		}
		dump.Filter.Query = query
	}
	if strings.TrimSpace(find) != "" {
		field, value, err := splitPair(find)
		if err != nil {
			return dump, fmt.Errorf("--find: %w", err)
		}
		f := &missions.Find{Field: field, Value: value}
		if err := missions.ValidateFind(f); err != nil {
			return dump, fmt.Errorf("--find: %w", err)
		}
		dump.Find = f
	}
	return dump, nil
}

func splitPair(value string) (string, string, error) {
	key, rest, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("want field=value, got %q", value)
	}
	return strings.TrimSpace(key), rest, nil
}
