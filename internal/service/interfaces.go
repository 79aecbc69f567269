// Package service contains the sync coordinator: the single owner of the
// catalog store that sequences catalog acquisition, size checks, content
// downloads with progress, and update application against the transfer
// gateway.
package service

import (
	"context"

	"github.com/ataverin/go-content-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/coordinator_mock.go -package=mock

// Callback signatures for the coordinator's asynchronous completions. Every
// accepted operation invokes its callback exactly once; a rejected operation
// never invokes it.
type (
	// ProgressCallback receives download status snapshots while a content
	// transfer is running.
	ProgressCallback func(models.DownloadStatus)

	// ResultCallback receives the terminal outcome of a content download.
	ResultCallback func(models.RequestResult)

	// CatalogCallback receives the outcome of a single-catalog operation.
	CatalogCallback func(models.DataResult[models.CatalogHandle])

	// SizeCallback receives the outcome of a size estimation.
	SizeCallback func(models.DataResult[models.SizeEstimate])

	// UpdatesCallback receives the outcome of an update check.
	UpdatesCallback func(models.DataResult[[]string])

	// CatalogsCallback receives the outcome of an update application: the
	// handles that were committed to the store.
	CatalogsCallback func(models.DataResult[[]models.CatalogHandle])
)

// SyncCoordinator orchestrates catalog synchronization. Submission follows a
// two-phase protocol: the boolean return means "request accepted for
// asynchronous processing", never the operation's outcome. Preconditions fail
// closed: a false return is logged, yields no callback, and mutates nothing.
type SyncCoordinator interface {
	// DownloadCatalog fetches the catalog at path from the origin and adds
	// it to the store. Rejected when the gateway reports the catalog
	// already loaded.
	DownloadCatalog(ctx context.Context, path string, done CatalogCallback) bool

	// LoadCatalogFromCache loads the catalog at path from the local cache
	// and adds it to the store. Rejected when no local cache exists.
	LoadCatalogFromCache(ctx context.Context, path string, done CatalogCallback) bool

	// EstimateDownloadSize reports the bytes pending for the loaded
	// catalog set. Rejected when the store is empty. No mutation.
	EstimateDownloadSize(ctx context.Context, done SizeCallback) bool

	// DownloadContent starts downloading pending content for the loaded
	// catalog set, emitting progress snapshots until the transfer
	// finishes. progress is invoked at least once before done and never
	// after it. Rejected when the store is empty.
	DownloadContent(ctx context.Context, progress ProgressCallback, done ResultCallback) bool

	// CheckForUpdatedCatalogs asks the origin which loaded catalogs are
	// stale. Rejected when the store is empty. No mutation.
	CheckForUpdatedCatalogs(ctx context.Context, done UpdatesCallback) bool

	// DownloadUpdatedCatalogs re-fetches the given catalogs and replaces
	// their store slots by locator id. Handles that match no stored
	// catalog are dropped with a warning. Rejected when the store is
	// empty.
	DownloadUpdatedCatalogs(ctx context.Context, locatorIDs []string, done CatalogsCallback) bool

	// CacheExistsForAll synchronously reports whether every loaded catalog
	// is locally cached. An empty store reports false.
	CacheExistsForAll(ctx context.Context) bool

	// ClearCache synchronously removes all catalogs from the store,
	// releasing each one through the gateway. Release failures are logged
	// and swallowed.
	ClearCache(ctx context.Context)

	// HasCatalogs reports whether any catalog is loaded.
	HasCatalogs() bool

	// Catalogs returns a snapshot of the loaded catalog set.
	Catalogs() models.CatalogSet
}
