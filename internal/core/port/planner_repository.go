package port

import (
	"context"
	"errors"

	"mesa-planner/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrInvalidCampaign    = errors.New("invalid campaign")
	ErrCapacityTooLarge   = errors.New("capacity too large")
	ErrSolveTimeout       = errors.New("solve timed out")
)

// PlannerRepository defines the persistence layer for the planner. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and store an allocation together with its items
// atomically.
type PlannerRepository interface {
	// ListCampaigns returns the catalogue campaigns with the given ids, or
	// the whole catalogue when ids is empty. Unknown ids are skipped.
	ListCampaigns(ctx context.Context, ids []int64) ([]domain.Campaign, error)
	// CreateCampaign stores a campaign and sets its ID.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// SaveAllocation stores an allocation and its items.
	SaveAllocation(ctx context.Context, a *domain.Allocation) error
	// GetAllocation returns an allocation by id, or nil when it does not
	// exist.
	GetAllocation(ctx context.Context, id string) (*domain.Allocation, error)
}
