package models

import "time"

// CatalogDescriptor is the origin's wire representation of one catalog: the
// handle identity plus the content entries it addresses. Descriptors are
// fetched from the origin on download and cached on disk verbatim so that
// load-from-cache and size estimation work offline.
type CatalogDescriptor struct {
	LocatorID string         `json:"locator_id"`
	Version   string         `json:"version"`
	Keys      []string       `json:"keys"`
	Entries   []ContentEntry `json:"entries"`
}

// ContentEntry describes one downloadable content item of a catalog.
type ContentEntry struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	// Hash is the hex-encoded SHA-256 of the content bytes. It names the
	// file in the local content cache and is verified after every fetch.
	Hash string `json:"hash"`
}

// Handle converts the descriptor to the in-memory catalog handle.
func (d CatalogDescriptor) Handle() CatalogHandle {
	return CatalogHandle{LocatorID: d.LocatorID, Keys: d.Keys, Version: d.Version}
}

// UpdateCheckRequest asks the origin which of the listed catalogs have a
// newer version upstream.
type UpdateCheckRequest struct {
	Catalogs []CatalogVersion `json:"catalogs"`
	Length   int              `json:"length"`
	// Hash is the HMAC-SHA256 transport integrity hash over Catalogs,
	// present when the client is configured with a hash key.
	Hash string `json:"hash,omitempty"`
}

// CatalogVersion is the lightweight id/version pair used by update checks.
type CatalogVersion struct {
	LocatorID string `json:"locator_id"`
	Version   string `json:"version"`
}

// UpdateCheckResponse lists the locator ids that are stale on the client.
type UpdateCheckResponse struct {
	Updated []string `json:"updated"`
	Length  int      `json:"length"`
}

// CatalogIndexEntry is one row of the local cache index database. It records
// what is cached where, not catalog content itself.
type CatalogIndexEntry struct {
	LocatorID      string    `json:"locator_id"`
	Version        string    `json:"version"`
	KeysCount      int       `json:"keys_count"`
	DescriptorPath string    `json:"descriptor_path"`
	ContentBytes   int64     `json:"content_bytes"`
	CachedAt       time.Time `json:"cached_at"`
}
