// Package gateway provides the transfer layer between the sync coordinator
// and the remote content origin.
//
// The primary abstraction is [TransferGateway], which decouples the service
// layer from the underlying transport and cache mechanics. The package ships
// an HTTP implementation ([NewHTTPTransferGateway]) backed by resty, a disk
// cache for catalog descriptors and content, and the SQLite cache index.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrCatalogNotFound] for 404, [ErrUnauthorized] for
// 401).
package gateway

import (
	"context"

	"github.com/ataverin/go-content-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// TransferGateway defines transport-agnostic access to the content origin and
// the local cache. Implementations are responsible for serialisation,
// authentication header management, cache registration bookkeeping, and
// mapping transport-level errors to the sentinel values defined in this
// package.
//
// Methods are synchronous; the coordinator invokes them from its own
// goroutines and delivers completions through its callback protocol.
type TransferGateway interface {
	// CatalogLoaded reports whether the catalog at path has already been
	// registered by a successful DownloadCatalog or LoadCatalogFromCache
	// and not yet released.
	CatalogLoaded(path string) bool

	// DownloadCatalog fetches the catalog descriptor at path from the
	// origin, caches it on disk, records it in the cache index, registers
	// it, and returns the resulting handle.
	DownloadCatalog(ctx context.Context, path string) (models.CatalogHandle, error)

	// LoadCatalogFromCache loads the descriptor for path from the local
	// disk cache without touching the origin. Returns [ErrCacheMissing]
	// if no cached descriptor exists.
	LoadCatalogFromCache(ctx context.Context, path string) (models.CatalogHandle, error)

	// CacheExists reports cache presence. With an empty set it reports
	// whether any catalog descriptor is cached at all; with a non-empty set
	// it reports whether every member of the set is cached.
	CacheExists(ctx context.Context, catalogs models.CatalogSet) bool

	// EstimateDownloadSize computes the bytes required to bring the content
	// of the given catalogs up to date against the local cache. An
	// up-to-date set yields SizeEstimate{UpToDate: true}.
	EstimateDownloadSize(ctx context.Context, catalogs models.CatalogSet) (models.SizeEstimate, error)

	// DownloadContent starts fetching all pending content entries of the
	// given catalogs and returns a handle for polling progress. The
	// transfer runs until completion or failure; it is not cancelable by
	// the caller beyond ctx.
	DownloadContent(ctx context.Context, catalogs models.CatalogSet) (TransferHandle, error)

	// CheckForUpdatedCatalogs asks the origin which of the given catalogs
	// have a newer version upstream and returns their locator ids.
	CheckForUpdatedCatalogs(ctx context.Context, catalogs models.CatalogSet) ([]string, error)

	// DownloadUpdatedCatalogs re-fetches descriptors for the given locator
	// ids and returns the refreshed handles.
	DownloadUpdatedCatalogs(ctx context.Context, locatorIDs []string) ([]models.CatalogHandle, error)

	// ReleaseCatalog deregisters the handle and removes its descriptor from
	// the disk cache and the cache index. Best effort; used by the catalog
	// store's clear hook.
	ReleaseCatalog(handle models.CatalogHandle) error
}

// TransferHandle exposes non-blocking observation of an active content
// transfer. Err is meaningful only once Done reports true.
type TransferHandle interface {
	// Status returns a snapshot of the transfer progress.
	Status() models.DownloadStatus

	// Done reports whether the transfer has finished, successfully or not.
	Done() bool

	// Err returns the terminal error of a finished transfer, or nil.
	Err() error
}
