package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/utils"
	"github.com/ataverin/go-content-sync/models"
)

// transferRegistry tracks active and finished content transfers for status
// polling. Finished transfers stay visible until the next successful
// download submission replaces them.
type transferRegistry struct {
	mu        sync.Mutex
	transfers map[string]*transferState
}

type transferState struct {
	status models.DownloadStatus
	result *models.RequestResult
}

func newTransferRegistry() *transferRegistry {
	return &transferRegistry{transfers: make(map[string]*transferState)}
}

func (tr *transferRegistry) add(transferID string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	for id, state := range tr.transfers {
		if state.result != nil {
			delete(tr.transfers, id)
		}
	}
	tr.transfers[transferID] = &transferState{}
}

// remove drops a transfer whose submission never went through.
func (tr *transferRegistry) remove(transferID string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	delete(tr.transfers, transferID)
}

func (tr *transferRegistry) progress(transferID string, status models.DownloadStatus) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if state, found := tr.transfers[transferID]; found {
		state.status = status
	}
}

func (tr *transferRegistry) finish(transferID string, result models.RequestResult) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if state, found := tr.transfers[transferID]; found {
		state.result = &result
	}
}

func (tr *transferRegistry) get(transferID string) (models.TransferStatusResponse, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	state, found := tr.transfers[transferID]
	if !found {
		return models.TransferStatusResponse{}, false
	}
	return models.TransferStatusResponse{
		TransferID: transferID,
		Status:     state.status,
		Percent:    state.status.Percent(),
		Result:     state.result,
	}, true
}

func (h *Handler) downloadContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	transferID := uuid.NewString()
	h.transfers.add(transferID)

	// the transfer outlives the submitting request
	ctx := context.WithoutCancel(r.Context())
	accepted := h.coordinator.DownloadContent(ctx,
		func(status models.DownloadStatus) {
			h.transfers.progress(transferID, status)
		},
		func(result models.RequestResult) {
			h.transfers.finish(transferID, result)
		},
	)
	if !accepted {
		h.transfers.remove(transferID)
		log.Warn().Msg("content download rejected")
		http.Error(w, "no catalogs loaded", http.StatusConflict)
		return
	}

	log.Info().Str("transfer_id", transferID).Msg("content download accepted")
	utils.WriteJSON(w, models.TransferAccepted{TransferID: transferID}, http.StatusAccepted)
}

func (h *Handler) transferStatus(w http.ResponseWriter, r *http.Request) {
	transferID := r.URL.Query().Get("transfer_id")
	if transferID == "" {
		http.Error(w, "transfer_id is required", http.StatusBadRequest)
		return
	}

	response, found := h.transfers.get(transferID)
	if !found {
		http.Error(w, "unknown transfer", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
