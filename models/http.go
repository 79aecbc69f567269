package models

// CatalogRequest is the body of catalog download and load-from-cache calls on
// the control API. Path is an opaque origin-side catalog address.
type CatalogRequest struct {
	Path string `json:"path"`
}

// ApplyUpdatesRequest is the body of the sync-apply call: the locator ids to
// re-download and replace in the store.
type ApplyUpdatesRequest struct {
	LocatorIDs []string `json:"locator_ids"`
	Length     int      `json:"length"`
}

// CatalogListResponse is the store snapshot returned by the control API.
type CatalogListResponse struct {
	Catalogs CatalogSet `json:"catalogs"`
	Length   int        `json:"length"`
}

// UpdatesResponse lists stale catalog ids reported by the origin.
type UpdatesResponse struct {
	LocatorIDs []string `json:"locator_ids"`
	Length     int      `json:"length"`
}

// TransferAccepted is returned when a content download has been accepted for
// asynchronous processing. TransferID identifies the transfer for status
// polling.
type TransferAccepted struct {
	TransferID string `json:"transfer_id"`
}

// TransferStatusResponse is the polling view of an active or finished content
// transfer. Result is nil while the transfer is still running.
type TransferStatusResponse struct {
	TransferID string         `json:"transfer_id"`
	Status     DownloadStatus `json:"status"`
	Percent    float64        `json:"percent"`
	Result     *RequestResult `json:"result,omitempty"`
}

// CacheExistsResponse reports whether every loaded catalog is present in the
// local cache.
type CacheExistsResponse struct {
	Exists bool `json:"exists"`
}
