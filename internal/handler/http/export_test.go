package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/org-atlas/models"
)

func TestExportCSV(t *testing.T) {
	// Arrange
	records := []*models.OrganizationRecord{
		{
			ID:      1,
			Name:    strPtr("Food Bank"),
			Address: strPtr("12 Main St, Stafford"),
			Phone:   strPtr("555-0100"),
			County:  strPtr("Stafford"),
			Zipcode: strPtr("22554"),
			Lat:     floatPtr(38.42),
			Lon:     floatPtr(-77.41),
			Status:  "confirmed--yes",
			Notes:   "verified",
			NoteHistory: []models.NoteEntry{
				{NoteTaker: "alice", Note: "verified", Date: "2026-08-30 14:05"},
			},
		},
		{
			ID:          2,
			Name:        strPtr("Shelter House"),
			Status:      models.StatusPending,
			NoteHistory: []models.NoteEntry{},
		},
	}
	srv := newTestServer(t, &organizationServiceMock{
		AllFunc: func() []*models.OrganizationRecord { return records },
	})

	// Act
	resp, raw := doRequest(t, srv, http.MethodGet, "/api/export.csv", "")

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=organizations_export.csv", resp.Header.Get("Content-Disposition"))

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"id", "name", "address", "phone", "email", "website",
		"county", "zipcode", "lat", "lon",
		"status", "notes", "note_taker", "note_history",
	}, rows[0])

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Food Bank", first[1])
	assert.Equal(t, "12 Main St, Stafford", first[2])
	assert.Equal(t, "555-0100", first[3])
	assert.Equal(t, "", first[4])
	assert.Equal(t, "Stafford", first[6])
	assert.Equal(t, "22554", first[7])
	assert.Equal(t, "38.42", first[8])
	assert.Equal(t, "-77.41", first[9])
	assert.Equal(t, "confirmed--yes", first[10])
	assert.Equal(t, "verified", first[11])

	// note history rides in one cell as a JSON array
	var history []models.NoteEntry
	require.NoError(t, json.Unmarshal([]byte(first[13]), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "alice", history[0].NoteTaker)

	second := rows[2]
	assert.Equal(t, "2", second[0])
	assert.Equal(t, "", second[8])
	assert.Equal(t, "", second[9])
	assert.Equal(t, "[]", second[13])
}

func TestExportCSV_EmptyCatalog(t *testing.T) {
	srv := newTestServer(t, &organizationServiceMock{
		AllFunc: func() []*models.OrganizationRecord { return nil },
	})

	resp, raw := doRequest(t, srv, http.MethodGet, "/api/export.csv", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeader, rows[0])
}

func TestExportRow_NilNoteHistory(t *testing.T) {
	row := exportRow(&models.OrganizationRecord{ID: 3, Status: models.StatusPending})

	require.Len(t, row, len(exportHeader))
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "null", row[13])
}
