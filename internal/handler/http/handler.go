package http

import (
	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
