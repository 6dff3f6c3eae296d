package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/missionboard/internal/missions"
	"github.com/five82/missionboard/internal/state"
)

// Fetch runs one fetch through store: Begin, then Complete or Fail. It
// returns state.ErrFetchPending without contacting the endpoint when another
// fetch is in flight. There are no retries.
func Fetch(ctx context.Context, store *state.Store, fetcher missions.Fetcher, query missions.Query, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	gen, err := store.Begin()
	if err != nil {
		logger.Debug("fetch skipped", zap.Error(err))
		return err
	}

	start := time.Now()
	result, err := fetcher.FetchMissions(ctx, query)
	elapsed := time.Since(start)
	if err != nil {
		store.Fail(gen, err)
		logger.Warn("fetch failed",
			zap.Uint64("generation", gen),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return err
	}

	if !store.Complete(gen, result) {
		logger.Debug("stale fetch dropped", zap.Uint64("generation", gen))
		return nil
	}
	logger.Info("fetch completed",
		zap.Uint64("generation", gen),
		zap.Int("missions", len(result.Data)),
		zap.Int("total", result.TotalCount),
		zap.Duration("elapsed", elapsed))
	return nil
}
