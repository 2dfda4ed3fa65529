// Package jobs holds the background jobs started next to the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/platform/metrics"
	"github.com/robfig/cron/v3"
)

// IndicatorSyncJob periodically copies indicator values from a source into the store.
type IndicatorSyncJob struct {
	source  IndicatorSource
	writer  portssvc.IndicatorWriterSvc
	logger  *slog.Logger
	timeout time.Duration
	cron    *cron.Cron
}

// NewIndicatorSyncJob creates the job. timeout bounds a single run.
func NewIndicatorSyncJob(source IndicatorSource, writer portssvc.IndicatorWriterSvc, logger *slog.Logger, timeout time.Duration) *IndicatorSyncJob {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &IndicatorSyncJob{
		source:  source,
		writer:  writer,
		logger:  logger.With(slog.String("job", "indicator_sync")),
		timeout: timeout,
	}
}

// RunOnce fetches and stores one round of values. It returns the number of values stored.
func (j *IndicatorSyncJob) RunOnce(ctx context.Context) (int, error) {
	start := time.Now()

	values, err := j.source.Fetch(ctx)
	if err != nil {
		metrics.RecordIndicatorSync(false, 0)
		j.logger.Error("Indicator fetch failed", slog.String("error", err.Error()))
		return 0, err
	}

	stored, err := j.writer.SyncIndicators(ctx, values)
	if err != nil {
		metrics.RecordIndicatorSync(false, 0)
		j.logger.Error("Indicator store failed", slog.String("error", err.Error()))
		return 0, err
	}

	metrics.RecordIndicatorSync(true, stored)
	j.logger.Info("Indicators synced",
		slog.Int("fetched", len(values)),
		slog.Int("stored", stored),
		slog.Duration("duration", time.Since(start)))
	return stored, nil
}

// Start schedules RunOnce with a standard five-field cron spec such as "0 9 * * *".
func (j *IndicatorSyncJob) Start(schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, j.tick); err != nil {
		return fmt.Errorf("invalid indicator sync schedule %q: %w", schedule, err)
	}
	j.cron = c
	c.Start()
	j.logger.Info("Indicator sync scheduled", slog.String("schedule", schedule))
	return nil
}

// Stop stops the scheduler and waits for a running sync, or for ctx to end.
func (j *IndicatorSyncJob) Stop(ctx context.Context) {
	if j.cron == nil {
		return
	}
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("Indicator sync still running at shutdown")
	}
}

func (j *IndicatorSyncJob) tick() {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error("Indicator sync panicked", slog.Any("panic", r))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, _ = j.RunOnce(ctx)
}
