package service

import (
	"context"

	"github.com/MKhiriev/org-atlas/internal/catalog"
	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/store"
)

// Services aggregates every application service handed to the handlers.
type Services struct {
	OrganizationService OrganizationService
}

// NewServices wires the services over the loaded catalog and storages.
func NewServices(ctx context.Context, cat *catalog.Catalog, storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		OrganizationService: NewOrganizationService(ctx, cat, storages.OverlayStore, log),
	}
}
