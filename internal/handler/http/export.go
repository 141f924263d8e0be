package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/models"
)

var exportHeader = []string{
	"id", "name", "address", "phone", "email", "website",
	"county", "zipcode", "lat", "lon",
	"status", "notes", "note_taker", "note_history",
}

// exportCSV streams a CSV snapshot of the full catalog, one row per
// organization, with the note history serialized as a JSON array string in
// a single cell.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=organizations_export.csv")
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		log.Err(err).Str("func", "*Handler.exportCSV").Msg("error writing export header")
		return
	}

	for _, record := range h.services.OrganizationService.All() {
		if err := writer.Write(exportRow(record)); err != nil {
			log.Err(err).Str("func", "*Handler.exportCSV").Msg("error writing export row")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Err(err).Str("func", "*Handler.exportCSV").Msg("error flushing export")
	}
}

func exportRow(record *models.OrganizationRecord) []string {
	history, err := json.Marshal(record.NoteHistory)
	if err != nil {
		history = []byte("")
	}

	return []string{
		strconv.FormatInt(record.ID, 10),
		stringOrEmpty(record.Name),
		stringOrEmpty(record.Address),
		stringOrEmpty(record.Phone),
		stringOrEmpty(record.Email),
		stringOrEmpty(record.Website),
		stringOrEmpty(record.County),
		stringOrEmpty(record.Zipcode),
		floatOrEmpty(record.Lat),
		floatOrEmpty(record.Lon),
		record.Status,
		record.Notes,
		record.NoteTaker,
		string(history),
	}
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
