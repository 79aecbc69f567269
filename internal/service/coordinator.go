package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ataverin/go-content-sync/internal/config"
	"github.com/ataverin/go-content-sync/internal/gateway"
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/store"
	"github.com/ataverin/go-content-sync/models"
)

type syncCoordinator struct {
	gateway gateway.TransferGateway
	logger  *logger.Logger

	progressInterval time.Duration
	operationTimeout time.Duration

	// mu owns the catalog store. Precondition checks, commits, and
	// clear all run under it; gateway calls do not.
	mu    sync.Mutex
	store store.CatalogStore
}

// NewSyncCoordinator wires the coordinator to its store and gateway.
// cfg.OperationTimeout of zero leaves async operations unbounded.
func NewSyncCoordinator(catalogStore store.CatalogStore, transferGateway gateway.TransferGateway, log *logger.Logger, cfg config.Sync) SyncCoordinator {
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	return &syncCoordinator{
		gateway:          transferGateway,
		logger:           log,
		progressInterval: interval,
		operationTimeout: cfg.OperationTimeout,
		store:            catalogStore,
	}
}

func (c *syncCoordinator) DownloadCatalog(ctx context.Context, path string, done CatalogCallback) bool {
	if c.gateway.CatalogLoaded(path) {
		c.logger.Warn().Str("path", path).Msg("download rejected: catalog already loaded")
		return false
	}

	go c.runDownloadCatalog(ctx, c.newRequestID(), path, done)
	return true
}

func (c *syncCoordinator) runDownloadCatalog(ctx context.Context, requestID, path string, done CatalogCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	handle, err := c.gateway.DownloadCatalog(ctx, path)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Str("path", path).Msg("catalog download failed")
		done(models.FailData[models.CatalogHandle](err))
		return
	}

	c.commitNewCatalog(requestID, handle, done)
}

func (c *syncCoordinator) LoadCatalogFromCache(ctx context.Context, path string, done CatalogCallback) bool {
	if !c.gateway.CacheExists(ctx, nil) {
		c.logger.Warn().Str("path", path).Msg("cache load rejected: no local cache")
		return false
	}

	go c.runLoadCatalogFromCache(ctx, c.newRequestID(), path, done)
	return true
}

func (c *syncCoordinator) runLoadCatalogFromCache(ctx context.Context, requestID, path string, done CatalogCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	handle, err := c.gateway.LoadCatalogFromCache(ctx, path)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Str("path", path).Msg("catalog cache load failed")
		done(models.FailData[models.CatalogHandle](err))
		return
	}

	c.commitNewCatalog(requestID, handle, done)
}

// commitNewCatalog is the shared completion handler of both catalog
// acquisition paths: it adds the handle to the store and reports the outcome.
func (c *syncCoordinator) commitNewCatalog(requestID string, handle models.CatalogHandle, done CatalogCallback) {
	c.mu.Lock()
	err := c.store.Add(handle)
	c.mu.Unlock()

	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Str("locator_id", handle.LocatorID).Msg("catalog commit failed")
		// Undo the gateway registration so the path stays retryable.
		if releaseErr := c.gateway.ReleaseCatalog(handle); releaseErr != nil {
			c.logger.Warn().Err(releaseErr).Str("request_id", requestID).Str("locator_id", handle.LocatorID).Msg("failed to release uncommitted catalog")
		}
		done(models.FailData[models.CatalogHandle](err))
		return
	}

	c.logger.Info().Str("request_id", requestID).Str("locator_id", handle.LocatorID).Str("version", handle.Version).Msg("catalog loaded")
	done(models.OKData(handle))
}

func (c *syncCoordinator) EstimateDownloadSize(ctx context.Context, done SizeCallback) bool {
	catalogs, ok := c.snapshotIfNotEmpty("size estimate")
	if !ok {
		return false
	}

	go c.runEstimateDownloadSize(ctx, catalogs, done)
	return true
}

func (c *syncCoordinator) runEstimateDownloadSize(ctx context.Context, catalogs models.CatalogSet, done SizeCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	estimate, err := c.gateway.EstimateDownloadSize(ctx, catalogs)
	if err != nil {
		c.logger.Error().Err(err).Msg("size estimate failed")
		done(models.FailData[models.SizeEstimate](err))
		return
	}

	done(models.OKData(estimate))
}

func (c *syncCoordinator) DownloadContent(ctx context.Context, progress ProgressCallback, done ResultCallback) bool {
	catalogs, ok := c.snapshotIfNotEmpty("content download")
	if !ok {
		return false
	}

	go c.runDownloadContent(ctx, c.newRequestID(), catalogs, progress, done)
	return true
}

func (c *syncCoordinator) runDownloadContent(ctx context.Context, requestID string, catalogs models.CatalogSet, progress ProgressCallback, done ResultCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	transfer, err := c.gateway.DownloadContent(ctx, catalogs)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Msg("content download failed to start")
		progress(models.DownloadStatus{Done: true})
		done(models.Fail(err))
		return
	}

	c.pollTransfer(ctx, requestID, transfer, progress, done)
}

// pollTransfer samples the transfer at the configured interval, emitting one
// progress snapshot per tick. It emits at least one snapshot before the
// terminal callback and none after it, and stops polling the moment the
// handle reports done.
func (c *syncCoordinator) pollTransfer(ctx context.Context, requestID string, transfer gateway.TransferHandle, progress ProgressCallback, done ResultCallback) {
	progress(transfer.Status())

	ticker := time.NewTicker(c.progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Error().Err(ctx.Err()).Str("request_id", requestID).Msg("content download aborted")
			done(models.Fail(ctx.Err()))
			return
		case <-ticker.C:
			if transfer.Done() {
				c.finishTransfer(requestID, transfer, done)
				return
			}
			progress(transfer.Status())
		}
	}
}

func (c *syncCoordinator) finishTransfer(requestID string, transfer gateway.TransferHandle, done ResultCallback) {
	if err := transfer.Err(); err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Msg("content download failed")
		done(models.Fail(err))
		return
	}

	status := transfer.Status()
	c.logger.Info().
		Str("request_id", requestID).
		Int64("bytes", status.BytesDownloaded).
		Msg("content download complete")
	done(models.OK())
}

func (c *syncCoordinator) CheckForUpdatedCatalogs(ctx context.Context, done UpdatesCallback) bool {
	catalogs, ok := c.snapshotIfNotEmpty("update check")
	if !ok {
		return false
	}

	go c.runCheckForUpdatedCatalogs(ctx, catalogs, done)
	return true
}

func (c *syncCoordinator) runCheckForUpdatedCatalogs(ctx context.Context, catalogs models.CatalogSet, done UpdatesCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	stale, err := c.gateway.CheckForUpdatedCatalogs(ctx, catalogs)
	if err != nil {
		c.logger.Error().Err(err).Msg("update check failed")
		done(models.FailData[[]string](err))
		return
	}

	done(models.OKData(stale))
}

func (c *syncCoordinator) DownloadUpdatedCatalogs(ctx context.Context, locatorIDs []string, done CatalogsCallback) bool {
	if _, ok := c.snapshotIfNotEmpty("update application"); !ok {
		return false
	}

	go c.runDownloadUpdatedCatalogs(ctx, c.newRequestID(), locatorIDs, done)
	return true
}

func (c *syncCoordinator) runDownloadUpdatedCatalogs(ctx context.Context, requestID string, locatorIDs []string, done CatalogsCallback) {
	ctx, cancel := c.operationContext(ctx)
	defer cancel()

	handles, err := c.gateway.DownloadUpdatedCatalogs(ctx, locatorIDs)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Msg("update download failed")
		done(models.FailData[[]models.CatalogHandle](err))
		return
	}

	c.commitUpdatedCatalogs(requestID, handles, done)
}

// commitUpdatedCatalogs replaces matching store slots in place. Handles whose
// id matches no stored catalog are dropped from the committed result; the
// drop is deliberate pass-through behavior and is surfaced as a warning only.
func (c *syncCoordinator) commitUpdatedCatalogs(requestID string, handles []models.CatalogHandle, done CatalogsCallback) {
	c.mu.Lock()
	unmatched := c.store.ReplaceByID(handles)
	c.mu.Unlock()

	if len(unmatched) > 0 {
		c.logger.Warn().
			Str("request_id", requestID).
			Strs("locator_ids", unmatched).
			Msg("update handles matched no stored catalog and were dropped")
	}

	dropped := make(map[string]bool, len(unmatched))
	for _, id := range unmatched {
		dropped[id] = true
	}
	applied := make([]models.CatalogHandle, 0, len(handles))
	for _, h := range handles {
		if !dropped[h.LocatorID] {
			applied = append(applied, h)
		}
	}

	c.logger.Info().Str("request_id", requestID).Int("applied", len(applied)).Msg("catalog updates committed")
	done(models.OKData(applied))
}

func (c *syncCoordinator) CacheExistsForAll(ctx context.Context) bool {
	c.mu.Lock()
	catalogs := c.store.All()
	c.mu.Unlock()

	if len(catalogs) == 0 {
		return false
	}

	return c.gateway.CacheExists(ctx, catalogs)
}

func (c *syncCoordinator) ClearCache(ctx context.Context) {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	count := len(c.store.All())
	c.store.Clear(c.gateway.ReleaseCatalog)
	c.mu.Unlock()

	log.Info().Int("released", count).Msg("catalog cache cleared")
}

func (c *syncCoordinator) HasCatalogs() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.HasCatalogs()
}

func (c *syncCoordinator) Catalogs() models.CatalogSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.All()
}

// snapshotIfNotEmpty returns the current catalog set, or rejects the
// operation with a log entry when the store is empty.
func (c *syncCoordinator) snapshotIfNotEmpty(operation string) (models.CatalogSet, bool) {
	c.mu.Lock()
	catalogs := c.store.All()
	c.mu.Unlock()

	if len(catalogs) == 0 {
		c.logger.Warn().Str("operation", operation).Msg("rejected: no catalogs loaded")
		return nil, false
	}
	return catalogs, true
}

func (c *syncCoordinator) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.operationTimeout > 0 {
		return context.WithTimeout(ctx, c.operationTimeout)
	}
	return context.WithCancel(ctx)
}

func (c *syncCoordinator) newRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
