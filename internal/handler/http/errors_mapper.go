package http

import (
	"errors"
	"net/http"

	"github.com/ataverin/go-content-sync/internal/gateway"
	"github.com/ataverin/go-content-sync/internal/store"
)

var errorStatusMap = map[error]int{
	gateway.ErrCatalogNotFound:      http.StatusNotFound,
	gateway.ErrCacheMissing:         http.StatusNotFound,
	gateway.ErrCatalogNotRegistered: http.StatusNotFound,
	gateway.ErrBadRequest:           http.StatusBadRequest,
	gateway.ErrUnauthorized:         http.StatusBadGateway,
	gateway.ErrOriginUnavailable:    http.StatusBadGateway,
	gateway.ErrHashMismatch:         http.StatusBadGateway,

	store.ErrDuplicateCatalog:   http.StatusConflict,
	store.ErrIndexEntryNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
