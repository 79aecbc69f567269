// Package store holds the in-memory catalog store owned by the sync
// coordinator and the SQLite-backed cache index repository maintained by the
// transfer gateway.
package store

import (
	"context"

	"github.com/ataverin/go-content-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReleaseHook is invoked for every handle removed by [CatalogStore.Clear] so
// the cache layer can deregister it. Hook failures are logged by the store
// and never abort remaining removals.
type ReleaseHook func(models.CatalogHandle) error

// CatalogStore is the ordered set of currently loaded catalogs, keyed by
// locator id. It performs no internal locking: the sync coordinator is its
// single owner and serializes all mutation.
type CatalogStore interface {
	// HasCatalogs reports whether the store is non-empty.
	HasCatalogs() bool

	// Add appends handle to the store. Returns [ErrDuplicateCatalog] if a
	// handle with the same locator id is already present.
	Add(handle models.CatalogHandle) error

	// ReplaceByID overwrites stored handles that share a locator id with an
	// input handle, preserving store order. Input handles with no stored
	// counterpart are ignored; their ids are returned for the caller to
	// report.
	ReplaceByID(handles []models.CatalogHandle) (unmatched []string)

	// Clear removes all handles, invoking release for each one before
	// removal. Release failures do not stop remaining removals.
	Clear(release ReleaseHook)

	// All returns a read-only snapshot of the store contents.
	All() models.CatalogSet
}

// CatalogIndexRepository persists metadata about locally cached catalogs in
// the cache index database.
type CatalogIndexRepository interface {
	SaveEntry(ctx context.Context, entry models.CatalogIndexEntry) error
	GetEntry(ctx context.Context, locatorID string) (models.CatalogIndexEntry, error)
	GetAllEntries(ctx context.Context) ([]models.CatalogIndexEntry, error)
	GetEntriesByID(ctx context.Context, locatorIDs []string) ([]models.CatalogIndexEntry, error)
	DeleteEntry(ctx context.Context, locatorID string) error
}
