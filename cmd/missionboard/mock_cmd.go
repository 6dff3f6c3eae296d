package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/missionboard/internal/logging"
	"github.com/five82/missionboard/internal/mockserver"
)

func newMockCmd(g *globalFlags) *cobra.Command {
	var (
		addr     string
		fixtures string
	)

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve fixture missions over a local GraphQL endpoint",
		Long: `Serve fixture missions over a local GraphQL endpoint.

Point the board at it with --endpoint http://localhost:4000/graphql.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Path: g.logFile, Debug: g.debug})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			set, err := mockserver.LoadFixtures(fixtures)
			if err != nil {
				return err
			}
			srv, err := mockserver.New(set, logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":4000", "listen address")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixtures file (default: built-in set)")
	return cmd
}
