package models

// StatusUpdateRequest is the JSON body of PUT /api/organizations/{id}/status.
// Pointer fields distinguish "field absent" from "field set to empty":
// an absent field leaves the current value untouched.
type StatusUpdateRequest struct {
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	NoteTaker *string `json:"note_taker,omitempty"`
}

// StatusUpdateResponse is the JSON envelope returned by the status update
// endpoint. Organization is populated only on success.
type StatusUpdateResponse struct {
	Success      bool                `json:"success"`
	Organization *OrganizationRecord `json:"organization,omitempty"`
}
