package http

import (
	"encoding/json"
	"net/http"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

func (h *Handler) estimateDownloadSize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resultCh := make(chan models.DataResult[models.SizeEstimate], 1)
	accepted := h.coordinator.EstimateDownloadSize(ctx, func(result models.DataResult[models.SizeEstimate]) {
		resultCh <- result
	})
	if !accepted {
		log.Warn().Msg("size estimate rejected")
		http.Error(w, "no catalogs loaded", http.StatusConflict)
		return
	}

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

func (h *Handler) checkForUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resultCh := make(chan models.DataResult[[]string], 1)
	accepted := h.coordinator.CheckForUpdatedCatalogs(ctx, func(result models.DataResult[[]string]) {
		resultCh <- result
	})
	if !accepted {
		log.Warn().Msg("update check rejected")
		http.Error(w, "no catalogs loaded", http.StatusConflict)
		return
	}

	select {
	case <-ctx.Done():
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	case result := <-resultCh:
		if !result.Success {
			http.Error(w, result.Message, statusFromError(result.Err))
			return
		}
		utils.WriteJSON(w, models.UpdatesResponse{
			LocatorIDs: result.Data,
			Length:     len(result.Data),
		}, http.StatusOK)
	}
}

func (h *Handler) applyUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var applyRequest models.ApplyUpdatesRequest
	if err := json.NewDecoder(r.Body).Decode(&applyRequest); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if len(applyRequest.LocatorIDs) == 0 {
		http.Error(w, "locator ids are required", http.StatusBadRequest)
		return
	}

	resultCh := make(chan models.DataResult[[]models.CatalogHandle], 1)
	accepted := h.coordinator.DownloadUpdatedCatalogs(ctx, applyRequest.LocatorIDs, func(result models.DataResult[[]models.CatalogHandle]) {
		resultCh <- result
	})
	if !accepted {
		log.Warn().Msg("update application rejected")
		http.Error(w, "no catalogs loaded", http.StatusConflict)
		return
	}

	select {
	case <-ctx.Done():
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
	case result := <-resultCh:
		if !result.Success {
			http.Error(w, result.Message, statusFromError(result.Err))
			return
		}
		utils.WriteJSON(w, models.CatalogListResponse{
			Catalogs: result.Data,
			Length:   len(result.Data),
		}, http.StatusOK)
	}
}
