package port

import (
	"context"

	"mesa-planner/internal/core/domain"
)

// AllocationCache keeps solved allocations keyed by a digest of their
// inputs so identical requests skip the solver.
type AllocationCache interface {
	// Get returns the cached allocation or nil on a miss.
	Get(ctx context.Context, key string) (*domain.Allocation, error)
	// Set stores an allocation under key.
	Set(ctx context.Context, key string, a *domain.Allocation) error
}
