package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/missionboard/internal/app"
	"github.com/five82/missionboard/internal/config"
	"github.com/five82/missionboard/internal/ui"
)

type globalFlags struct {
	configPath string
	endpoint   string
	limit      int
	theme      string
	logFile    string
	debug      bool
}

// options turns the parsed flags into app.Options. The limit only overrides
// the config when it was given explicitly.
func (g *globalFlags) options(cmd *cobra.Command) app.Options {
	opts := app.Options{
		ConfigPath: g.configPath,
		Endpoint:   g.endpoint,
		Theme:      g.theme,
		LogFile:    g.logFile,
		Debug:      g.debug,
	}
	if cmd.Flags().Changed("limit") {
		limit := g.limit
		opts.Limit = &limit
	}
	return opts
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "missionboard",
		Short:         "Browse SpaceX missions in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), g.options(cmd))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", fmt.Sprintf("config file path (default %s)", config.DefaultPath()))
	flags.StringVar(&g.endpoint, "endpoint", "", "GraphQL endpoint URL")
	flags.IntVar(&g.limit, "limit", 0, "maximum missions to request")
	flags.StringVar(&g.theme, "theme", "", fmt.Sprintf("color theme (%s)", strings.Join(ui.ThemeNames(), ", ")))
	flags.StringVar(&g.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&g.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newDumpCmd(g), newMockCmd(g))
	return cmd
}
