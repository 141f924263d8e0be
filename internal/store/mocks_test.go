package store

import (
	"context"

	"github.com/MKhiriev/org-atlas/models"
)

// overlayStoreMock is a func-field mock of [OverlayStore] for chain tests.
type overlayStoreMock struct {
	LoadFunc func(ctx context.Context) (models.OverlayDocument, error)
	SaveFunc func(ctx context.Context, doc models.OverlayDocument) error

	loadCalls int
	saveCalls int
}

func (m *overlayStoreMock) Load(ctx context.Context) (models.OverlayDocument, error) {
	m.loadCalls++
	return m.LoadFunc(ctx)
}

func (m *overlayStoreMock) Save(ctx context.Context, doc models.OverlayDocument) error {
	m.saveCalls++
	return m.SaveFunc(ctx, doc)
}

func strPtr(s string) *string { return &s }
