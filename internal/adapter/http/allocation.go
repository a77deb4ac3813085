package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

type allocateRequest struct {
	Capacity    *int64            `json:"capacity"`
	CampaignIDs []int64           `json:"campaign_ids"`
	Campaigns   []domain.Campaign `json:"campaigns"`
	Prioritize  *bool             `json:"prioritize"`
	Prune       *bool             `json:"prune"`
}

type allocationResponse struct {
	ID              string                   `json:"id"`
	Capacity        int64                    `json:"capacity"`
	TotalValue      int64                    `json:"total_value"`
	ImpressionsUsed int64                    `json:"impressions_used"`
	Prioritized     bool                     `json:"prioritized"`
	Pruned          bool                     `json:"pruned"`
	Considered      int                      `json:"campaigns_considered"`
	Retained        int                      `json:"campaigns_retained"`
	Items           []allocationItemResponse `json:"items"`
	CreatedAt       time.Time                `json:"created_at"`
}

type allocationItemResponse struct {
	Campaign    domain.Campaign `json:"campaign"`
	Count       int64           `json:"count"`
	Impressions int64           `json:"impressions"`
	Value       int64           `json:"value"`
}

func newAllocationResponse(a *domain.Allocation) allocationResponse {
	resp := allocationResponse{
		ID:              a.ID,
		Capacity:        a.Capacity,
		TotalValue:      a.TotalValue,
		ImpressionsUsed: a.ImpressionsUsed,
		Prioritized:     a.Prioritized,
		Pruned:          a.Pruned,
		Considered:      a.Considered,
		Retained:        a.Retained,
		Items:           make([]allocationItemResponse, 0, len(a.Items)),
		CreatedAt:       a.CreatedAt,
	}
	for _, it := range a.Items {
		resp.Items = append(resp.Items, allocationItemResponse{
			Campaign:    it.Campaign,
			Count:       it.Count,
			Impressions: it.Impressions(),
			Value:       it.Value(),
		})
	}
	return resp
}

// handleAllocate solves an impression plan. The body carries the capacity
// and either inline campaigns or catalogue ids; with neither the whole
// catalogue is planned. Optional prioritize and prune flags override the
// server defaults. On success it returns HTTP 201 with the allocation.
// Invalid input results in HTTP 400 and a solve that runs past the
// configured timeout in HTTP 503.
func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var body allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.Capacity == nil {
		http.Error(w, "missing capacity", http.StatusBadRequest)
		return
	}

	alloc, err := h.svc.Allocate(r.Context(), port.AllocateReq{
		Capacity:    *body.Capacity,
		CampaignIDs: body.CampaignIDs,
		Campaigns:   body.Campaigns,
		Prioritize:  body.Prioritize,
		Prune:       body.Prune,
	})
	if err != nil {
		h.writeError(w, r, "allocate error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newAllocationResponse(alloc))
}

// handleGetAllocation returns a stored allocation. It expects an {id} path
// parameter holding a UUID. Malformed ids result in HTTP 400 and unknown
// ones in HTTP 404.
func (h *Handler) handleGetAllocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid allocation id", http.StatusBadRequest)
		return
	}
	alloc, err := h.svc.GetAllocation(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get allocation error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newAllocationResponse(alloc))
}
