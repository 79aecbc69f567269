package http

import (
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/service"
)

type Handler struct {
	coordinator service.SyncCoordinator
	transfers   *transferRegistry

	logger *logger.Logger
}

func NewHandler(coordinator service.SyncCoordinator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		coordinator: coordinator,
		transfers:   newTransferRegistry(),
		logger:      logger,
	}
}
