package httpadapter

import (
	"encoding/json"
	"net/http"

	"mesa-planner/internal/core/domain"
)

// handleCreateCampaign adds a campaign to the catalogue. The body is a JSON
// campaign; any id in it is ignored. It returns HTTP 201 with the stored
// campaign, or HTTP 400 when the body is malformed or the campaign invalid.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.svc.CreateCampaign(r.Context(), c)
	if err != nil {
		h.writeError(w, r, "create campaign error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// handleListCampaigns returns the whole catalogue as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns error", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}
