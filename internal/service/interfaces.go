package service

import (
	"context"

	"github.com/MKhiriev/org-atlas/models"
)

// OrganizationService exposes the reconciled catalog and the update
// operation that mutates an organization's overlay fields and persists the
// overlay document.
type OrganizationService interface {
	// All returns every record in original dataset order.
	All() []*models.OrganizationRecord

	// WithLocation returns the records having valid coordinates.
	WithLocation() []*models.OrganizationRecord

	// WithoutLocation returns the records missing valid coordinates.
	WithoutLocation() []*models.OrganizationRecord

	// Overlay returns a snapshot of the current overlay document.
	Overlay() models.OverlayDocument

	// Counties returns the deduplicated, case-insensitively sorted list
	// of county names present in the catalog.
	Counties() []string

	// Update applies a status/notes delta to the record with the given id,
	// persists the overlay document, and returns the updated record.
	// Returns ErrOrganizationNotFound for unknown ids.
	Update(ctx context.Context, id int64, delta models.StatusUpdateRequest) (*models.OrganizationRecord, error)
}
