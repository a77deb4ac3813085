package port

import (
	"context"

	"mesa-planner/internal/core/domain"
)

// PlannerUseCase defines the business operations exposed by the planner.
// This interface represents the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type PlannerUseCase interface {
	// Allocate solves the impression plan described by req and stores the
	// result. Inline campaigns take precedence over catalogue ids; with
	// neither, the whole catalogue is planned.
	Allocate(ctx context.Context, req AllocateReq) (*domain.Allocation, error)

	// GetAllocation returns a stored allocation or ErrAllocationNotFound.
	GetAllocation(ctx context.Context, id string) (*domain.Allocation, error)

	// CreateCampaign validates and stores a catalogue campaign.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)

	// ListCampaigns returns the whole catalogue.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// AllocateReq describes one planning request. Prioritize and Prune
// override the configured defaults when set.
type AllocateReq struct {
	Capacity    int64
	CampaignIDs []int64
	Campaigns   []domain.Campaign
	Prioritize  *bool
	Prune       *bool
}
