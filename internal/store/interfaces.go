package store

import (
	"context"

	"github.com/MKhiriev/org-atlas/models"
)

// OverlayStore persists the overlay document that carries every
// organization's mutable verification state. The document is always read
// and written as a whole; there are no per-record operations.
type OverlayStore interface {
	// Load returns the persisted overlay document. Implementations return
	// an error only when a later backend in a chain should be consulted;
	// terminal backends degrade to an empty document instead.
	Load(ctx context.Context) (models.OverlayDocument, error)

	// Save replaces the persisted document with doc in full.
	Save(ctx context.Context, doc models.OverlayDocument) error
}
