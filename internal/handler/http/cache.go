package http

import (
	"net/http"

	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

func (h *Handler) cacheExists(w http.ResponseWriter, r *http.Request) {
	exists := h.coordinator.CacheExistsForAll(r.Context())

	utils.WriteJSON(w, models.CacheExistsResponse{Exists: exists}, http.StatusOK)
}

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	h.coordinator.ClearCache(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
