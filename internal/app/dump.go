package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/five82/missionboard/internal/logging"
	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/render"
	"github.com/five82/missionboard/internal/state"
	"github.com/five82/missionboard/internal/viewstate"
)

// DumpOptions select what the non-interactive dump prints.
type DumpOptions struct {
	Mode   viewstate.DisplayMode
	Sort   viewstate.Field
	Filter viewstate.Filter
	// Find narrows the query on the server before any local filtering.
	Find *missions.Find
	// Width wraps cards and bounds the table; zero leaves the table at its
	// natural width.
	Width int
	// Style is the glamour style for cards.
	Style string
}

// Dump fetches once and writes the derived view to w. Logs go to stderr.
func Dump(ctx context.Context, opts Options, dump DumpOptions, w io.Writer) error {
	cfg, err := Configure(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Debug: opts.Debug})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := missions.NewClient(cfg.Endpoint, missions.WithTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("init missions client: %w", err)
	}

	query := cfg.Query()
	query.Find = dump.Find
	return DumpFrom(ctx, client, query, dump, w, logger)
}

// DumpFrom is Dump against an already constructed fetcher.
func DumpFrom(ctx context.Context, fetcher missions.Fetcher, query missions.Query, dump DumpOptions, w io.Writer, logger *zap.Logger) error {
	store := &state.Store{}
	if err := Fetch(ctx, store, fetcher, query, logger); err != nil {
		return err
	}

	view := viewstate.New()
	view.LoadAuthoritative(store.Snapshot().Result.Data)
	if err := view.SetDisplayMode(dump.Mode); err != nil {
		return err
	}
	if err := view.SetSortKey(dump.Sort); err != nil {
		return err
	}
	if err := view.SetFilter(dump.Filter.Field, dump.Filter.Query); err != nil {
		return err
	}

	return render.Write(w, view.Preferences().Mode, view.DisplayedSet(), render.Options{
		Width: dump.Width,
		Style: dump.Style,
	})
}
