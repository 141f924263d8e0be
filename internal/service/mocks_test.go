package service

import (
	"context"

	"github.com/MKhiriev/org-atlas/models"
)

// overlayStoreMock is a func-field mock of the overlay persistence store.
type overlayStoreMock struct {
	LoadFunc func(ctx context.Context) (models.OverlayDocument, error)
	SaveFunc func(ctx context.Context, doc models.OverlayDocument) error

	saveCalls int
	savedDocs []models.OverlayDocument
}

func (m *overlayStoreMock) Load(ctx context.Context) (models.OverlayDocument, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return models.OverlayDocument{}, nil
}

func (m *overlayStoreMock) Save(ctx context.Context, doc models.OverlayDocument) error {
	m.saveCalls++
	m.savedDocs = append(m.savedDocs, doc)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, doc)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
