package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/viewstate"
)

func TestParseDumpFlags(t *testing.T) {
	dump, err := parseDumpFlags("grid", "name", "id=ce9", "payload_id=CRS-2")
	require.NoError(t, err)
	require.Equal(t, viewstate.ModeTable, dump.Mode)
	require.Equal(t, viewstate.FieldName, dump.Sort)
	require.Equal(t, viewstate.Filter{Field: viewstate.FieldID, Query: "ce9"}, dump.Filter)
	require.Equal(t, &missions.Find{Field: "payload_id", Value: "CRS-2"}, dump.Find)
}

func TestParseDumpFlags_Defaults(t *testing.T) {
	dump, err := parseDumpFlags("card", "none", "", "")
	require.NoError(t, err)
	require.Equal(t, viewstate.ModeCard, dump.Mode)
	require.Equal(t, viewstate.FieldNone, dump.Sort)
	require.False(t, dump.Filter.Active())
	require.Nil(t, dump.Find)
}

func TestParseDumpFlags_Errors(t *testing.T) {
	_, err := parseDumpFlags("card", "manufacturer", "", "")
	require.True(t, errors.Is(err, viewstate.ErrInvalidField), "sort: %v", err)

	_, err = parseDumpFlags("card", "none", "description=x", "")
	require.True(t, errors.Is(err, viewstate.ErrInvalidField), "filter: %v", err)

	_, err = parseDumpFlags("grid view", "none", "", "")
	require.True(t, errors.Is(err, viewstate.ErrInvalidMode), "mode: %v", err)

	_, err = parseDumpFlags("card", "none", "name", "")
	require.ErrorContains(t, err, "field=value")

	_, err = parseDumpFlags("card", "none", "", "rocket=falcon")
	require.True(t, errors.Is(err, missions.ErrInvalidFind), "find: %v", err)
}

func TestGlobalFlags_LimitOnlyWhenSet(t *testing.T) {
	g := &globalFlags{}
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&g.limit, "limit", 0, "")
	require.Nil(t, g.options(cmd).Limit)

	require.NoError(t, cmd.Flags().Set("limit", "0"))
	limit := g.options(cmd).Limit
	require.NotNil(t, limit)
	require.Equal(t, 0, *limit)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"dump", "mock"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, sub.Name())
	}
	require.NotNil(t, cmd.PersistentFlags().Lookup("endpoint"))
}
