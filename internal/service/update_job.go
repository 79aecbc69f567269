package service

import (
	"context"
	"sync"
	"time"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/models"
)

// UpdateJob periodically checks the origin for stale catalogs and, when
// auto-apply is enabled, downloads and commits the updates.
type UpdateJob interface {
	// Start launches the background ticker. A previously running job is
	// stopped first. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()
}

type updateJob struct {
	coordinator SyncCoordinator
	logger      *logger.Logger
	autoApply   bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewUpdateJob creates an UpdateJob driving coordinator. The job is idle
// until Start is called.
func NewUpdateJob(coordinator SyncCoordinator, log *logger.Logger, autoApply bool) UpdateJob {
	return &updateJob{coordinator: coordinator, logger: log, autoApply: autoApply}
}

func (j *updateJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *updateJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// tick runs one check-and-apply cycle, waiting on each coordinator callback
// so cycles never overlap.
func (j *updateJob) tick(ctx context.Context) {
	if !j.coordinator.HasCatalogs() {
		return
	}

	stale, ok := j.checkForUpdates(ctx)
	if !ok || len(stale) == 0 {
		return
	}

	j.logger.Info().Strs("locator_ids", stale).Msg("stale catalogs detected")

	if !j.autoApply {
		return
	}
	j.applyUpdates(ctx, stale)
}

func (j *updateJob) checkForUpdates(ctx context.Context) ([]string, bool) {
	resultCh := make(chan models.DataResult[[]string], 1)
	accepted := j.coordinator.CheckForUpdatedCatalogs(ctx, func(result models.DataResult[[]string]) {
		resultCh <- result
	})
	if !accepted {
		return nil, false
	}

	select {
	case <-ctx.Done():
		return nil, false
	case result := <-resultCh:
		if !result.Success {
			j.logger.Error().Str("reason", result.Message).Msg("periodic update check failed")
			return nil, false
		}
		return result.Data, true
	}
}

func (j *updateJob) applyUpdates(ctx context.Context, locatorIDs []string) {
	resultCh := make(chan models.DataResult[[]models.CatalogHandle], 1)
	accepted := j.coordinator.DownloadUpdatedCatalogs(ctx, locatorIDs, func(result models.DataResult[[]models.CatalogHandle]) {
		resultCh <- result
	})
	if !accepted {
		return
	}

	select {
	case <-ctx.Done():
	case result := <-resultCh:
		if !result.Success {
			j.logger.Error().Str("reason", result.Message).Msg("automatic update application failed")
			return
		}
		j.logger.Info().Int("applied", len(result.Data)).Msg("catalog updates auto-applied")
	}
}
