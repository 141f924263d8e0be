package http

import (
	"context"

	"github.com/MKhiriev/org-atlas/models"
)

// organizationServiceMock is a func-field mock of the organization service.
type organizationServiceMock struct {
	AllFunc             func() []*models.OrganizationRecord
	WithLocationFunc    func() []*models.OrganizationRecord
	WithoutLocationFunc func() []*models.OrganizationRecord
	OverlayFunc         func() models.OverlayDocument
	CountiesFunc        func() []string
	UpdateFunc          func(ctx context.Context, id int64, delta models.StatusUpdateRequest) (*models.OrganizationRecord, error)
}

func (m *organizationServiceMock) All() []*models.OrganizationRecord {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return nil
}

func (m *organizationServiceMock) WithLocation() []*models.OrganizationRecord {
	if m.WithLocationFunc != nil {
		return m.WithLocationFunc()
	}
	return nil
}

func (m *organizationServiceMock) WithoutLocation() []*models.OrganizationRecord {
	if m.WithoutLocationFunc != nil {
		return m.WithoutLocationFunc()
	}
	return nil
}

func (m *organizationServiceMock) Overlay() models.OverlayDocument {
	if m.OverlayFunc != nil {
		return m.OverlayFunc()
	}
	return models.OverlayDocument{}
}

func (m *organizationServiceMock) Counties() []string {
	if m.CountiesFunc != nil {
		return m.CountiesFunc()
	}
	return nil
}

func (m *organizationServiceMock) Update(ctx context.Context, id int64, delta models.StatusUpdateRequest) (*models.OrganizationRecord, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, delta)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
