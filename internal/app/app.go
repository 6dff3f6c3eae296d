package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/missionboard/internal/config"
	"github.com/five82/missionboard/internal/logging"
	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/state"
	"github.com/five82/missionboard/internal/ui"
)

// Options configure missionboard. Non-zero fields override the config file
// and environment.
type Options struct {
	ConfigPath string
	Endpoint   string
	Limit      *int
	Theme      string
	LogFile    string
	Debug      bool
}

// Configure loads the config and applies the command-line overrides.
func Configure(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if opts.Limit != nil {
		cfg.Limit = *opts.Limit
	}
	if v := strings.TrimSpace(opts.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(opts.LogFile); v != "" {
		cfg.LogFile = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run boots the TUI until the user quits or the context is cancelled. The
// first fetch is issued by the UI itself.
func Run(ctx context.Context, opts Options) error {
	cfg, err := Configure(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Debug: opts.Debug})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := missions.NewClient(cfg.Endpoint, missions.WithTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("init missions client: %w", err)
	}
	logger.Info("starting",
		zap.String("endpoint", client.Endpoint()),
		zap.Int("limit", cfg.Limit),
		zap.String("theme", cfg.Theme))

	store := &state.Store{}
	query := cfg.Query()

	return ui.Run(ctx, ui.Options{
		Context: ctx,
		Store:   store,
		Refresh: func(ctx context.Context) error {
			return Fetch(ctx, store, client, query, logger)
		},
		Logger:    logger,
		ThemeName: cfg.Theme,
		Endpoint:  client.Endpoint(),
	})
}
