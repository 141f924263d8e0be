package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/service"
	"github.com/MKhiriev/org-atlas/internal/utils"
	"github.com/MKhiriev/org-atlas/models"
)

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.OrganizationService.All(), http.StatusOK)
}

func (h *Handler) listOrganizationsWithLocation(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.OrganizationService.WithLocation(), http.StatusOK)
}

func (h *Handler) listOrganizationsWithoutLocation(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.OrganizationService.WithoutLocation(), http.StatusOK)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// a non-numeric id can never match a record
		utils.WriteJSON(w, models.StatusUpdateResponse{Success: false}, http.StatusNotFound)
		return
	}

	var delta models.StatusUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&delta); err != nil {
		log.Err(err).Str("func", "*Handler.updateStatus").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.OrganizationService.Update(r.Context(), id, delta)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			utils.WriteJSON(w, models.StatusUpdateResponse{Success: false}, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.updateStatus").Msg("error updating organization")
		http.Error(w, "error updating organization", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.StatusUpdateResponse{Success: true, Organization: record}, http.StatusOK)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.OrganizationService.Overlay(), http.StatusOK)
}

func (h *Handler) listCounties(w http.ResponseWriter, r *http.Request) {
	counties := h.services.OrganizationService.Counties()
	if counties == nil {
		counties = []string{}
	}

	utils.WriteJSON(w, counties, http.StatusOK)
}
