package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/org-atlas/models"
)

func mapTestRecords() []*models.OrganizationRecord {
	return []*models.OrganizationRecord{
		{
			ID:     1,
			Name:   strPtr("Stafford Food Bank"),
			County: strPtr("Stafford"),
			Lat:    floatPtr(38.42),
			Lon:    floatPtr(-77.41),
			Status: models.StatusPending,
		},
		{
			ID:     2,
			Name:   strPtr("Manassas Clinic"),
			County: strPtr("Prince William"),
			Lat:    floatPtr(38.75),
			Lon:    floatPtr(-77.48),
			Status: "completed",
		},
	}
}

func TestRenderMap(t *testing.T) {
	records := mapTestRecords()
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return records },
	})

	resp, raw := doRequest(t, srv, http.MethodGet, "/api/map", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	page := string(raw)
	assert.Contains(t, page, "Stafford Food Bank")
	assert.Contains(t, page, "Manassas Clinic")
	assert.Contains(t, page, "markerClusterGroup")
}

func TestRenderMap_CountyFilter(t *testing.T) {
	records := mapTestRecords()
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return records },
	})

	_, raw := doRequest(t, srv, http.MethodGet, "/api/map?counties=Stafford", "")

	page := string(raw)
	assert.Contains(t, page, "Stafford Food Bank")
	assert.NotContains(t, page, "Manassas Clinic")
}

func TestRenderMap_MultipleCounties(t *testing.T) {
	records := mapTestRecords()
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return records },
	})

	// the counties parameter is a comma-separated list, spaces tolerated
	_, raw := doRequest(t, srv, http.MethodGet, "/api/map?counties=Stafford,%20Prince%20William", "")

	page := string(raw)
	assert.Contains(t, page, "Stafford Food Bank")
	assert.Contains(t, page, "Manassas Clinic")
}

func TestRenderMap_StatusFilter(t *testing.T) {
	records := mapTestRecords()
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return records },
	})

	_, raw := doRequest(t, srv, http.MethodGet, "/api/map?status=done", "")

	page := string(raw)
	assert.NotContains(t, page, "Stafford Food Bank")
	assert.Contains(t, page, "Manassas Clinic")
}

func TestRenderMap_SearchFilter(t *testing.T) {
	records := mapTestRecords()
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return records },
	})

	_, raw := doRequest(t, srv, http.MethodGet, "/api/map?search=clinic", "")

	page := string(raw)
	assert.NotContains(t, page, "Stafford Food Bank")
	assert.Contains(t, page, "Manassas Clinic")
}

func TestRenderMap_EmptyResult(t *testing.T) {
	srv := newTestServer(t, &organizationServiceMock{
		WithLocationFunc: func() []*models.OrganizationRecord { return nil },
	})

	resp, raw := doRequest(t, srv, http.MethodGet, "/api/map", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "38.2")
}
