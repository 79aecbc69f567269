package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

func (h *Handler) downloadCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	catalogRequest, ok := decodeCatalogRequest(w, r)
	if !ok {
		return
	}

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	accepted := h.coordinator.DownloadCatalog(ctx, catalogRequest.Path, func(result models.DataResult[models.CatalogHandle]) {
		resultCh <- result
	})
	if !accepted {
		log.Warn().Str("path", catalogRequest.Path).Msg("catalog download rejected")
		http.Error(w, "catalog already loaded", http.StatusConflict)
		return
	}

	h.writeCatalogResult(ctx, w, resultCh)
}

func (h *Handler) loadCatalogFromCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	catalogRequest, ok := decodeCatalogRequest(w, r)
	if !ok {
		return
	}

	resultCh := make(chan models.DataResult[models.CatalogHandle], 1)
	accepted := h.coordinator.LoadCatalogFromCache(ctx, catalogRequest.Path, func(result models.DataResult[models.CatalogHandle]) {
		resultCh <- result
	})
	if !accepted {
		log.Warn().Str("path", catalogRequest.Path).Msg("catalog cache load rejected")
		http.Error(w, "no local catalog cache", http.StatusConflict)
		return
	}

	h.writeCatalogResult(ctx, w, resultCh)
}

func (h *Handler) listCatalogs(w http.ResponseWriter, r *http.Request) {
	catalogs := h.coordinator.Catalogs()

	response := models.CatalogListResponse{
		Catalogs: catalogs,
		Length:   len(catalogs),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func decodeCatalogRequest(w http.ResponseWriter, r *http.Request) (models.CatalogRequest, bool) {
	log := logger.FromRequest(r)

	var catalogRequest models.CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&catalogRequest); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return models.CatalogRequest{}, false
	}
	if catalogRequest.Path == "" {
		http.Error(w, "catalog path is required", http.StatusBadRequest)
		return models.CatalogRequest{}, false
	}

	return catalogRequest, true
}

// writeCatalogResult blocks until the coordinator's completion callback
// delivers the outcome, then writes it as the HTTP response.
func (h *Handler) writeCatalogResult(ctx context.Context, w http.ResponseWriter, resultCh <-chan models.DataResult[models.CatalogHandle]) {
	select {
	case <-ctx.Done():
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	case result := <-resultCh:
		if !result.Success {
			http.Error(w, result.Message, statusFromError(result.Err))
			return
		}
		utils.WriteJSON(w, result.Data, http.StatusOK)
	}
}
