package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/render"
	"github.com/MKhiriev/org-atlas/internal/service"
)

// renderMap serves the map view for the location-bearing subset, narrowed
// by the optional counties / status / search query parameters.
func (h *Handler) renderMap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params := service.FilterParams{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	if countiesParam := r.URL.Query().Get("counties"); countiesParam != "" {
		counties := make(map[string]struct{})
		for _, c := range strings.Split(countiesParam, ",") {
			if c = strings.TrimSpace(c); c != "" {
				counties[c] = struct{}{}
			}
		}
		params.Counties = counties
	}

	records := service.Filter(h.services.OrganizationService.WithLocation(), params)

	page, err := render.MapHTML(records)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderMap").Msg("error rendering map")
		http.Error(w, "error rendering map", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}
