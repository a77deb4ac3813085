package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"mesa-planner/internal/config/configs"
	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/knapsack"
	"mesa-planner/internal/core/port"
	"mesa-planner/internal/metrics"
)

// PlannerUseCase provides business logic for impression planning. It
// orchestrates the repository, the optional cache and the knapsack solver
// to implement the PlannerUseCase interface.
type PlannerUseCase struct {
	repo    port.PlannerRepository
	cache   port.AllocationCache
	metrics *metrics.Recorder
	logger  *slog.Logger
	cfg     configs.Solver

	// inFlight holds one unit per table level of the running solves. It is
	// nil when either MaxInFlight or MaxCapacity is unset.
	inFlight *semaphore.Weighted
}

// NewPlannerUseCase creates a new usecase. cache and rec may be nil, in
// which case results are not cached and no metrics are recorded.
func NewPlannerUseCase(repo port.PlannerRepository, cache port.AllocationCache, rec *metrics.Recorder, logger *slog.Logger, cfg configs.Solver) *PlannerUseCase {
	u := &PlannerUseCase{repo: repo, cache: cache, metrics: rec, logger: logger, cfg: cfg}
	if cfg.MaxInFlight > 0 && cfg.MaxCapacity > 0 {
		// a single request within MaxCapacity must always fit
		size := max(cfg.MaxInFlight, cfg.MaxCapacity+1)
		u.inFlight = semaphore.NewWeighted(size)
	}
	return u
}

// Allocate resolves the campaigns of req, solves the impression plan and
// stores it. An identical earlier request is served from the cache and
// returns the stored allocation.
func (u *PlannerUseCase) Allocate(ctx context.Context, req port.AllocateReq) (*domain.Allocation, error) {
	if u.cfg.MaxCapacity > 0 && req.Capacity > u.cfg.MaxCapacity {
		u.metrics.IncAllocation(metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %d exceeds %d", port.ErrCapacityTooLarge, req.Capacity, u.cfg.MaxCapacity)
	}

	campaigns, err := u.resolveCampaigns(ctx, req)
	if err != nil {
		if errors.Is(err, port.ErrCampaignNotFound) {
			u.metrics.IncAllocation(metrics.OutcomeRejected)
		}
		return nil, err
	}

	prioritize, prune := u.cfg.Prioritize, u.cfg.Prune
	if req.Prioritize != nil {
		prioritize = *req.Prioritize
	}
	if req.Prune != nil {
		prune = *req.Prune
	}

	key := cacheKey(req.Capacity, prioritize, prune, campaigns)
	if cached := u.lookup(ctx, key); cached != nil {
		u.metrics.IncAllocation(metrics.OutcomeCached)
		return cached, nil
	}

	alloc, err := u.solve(ctx, campaigns, req.Capacity, prioritize, prune)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			u.metrics.IncAllocation(metrics.OutcomeTimeout)
			return nil, fmt.Errorf("%w: %w", port.ErrSolveTimeout, err)
		case errors.Is(err, knapsack.ErrInvalidArgument), errors.Is(err, knapsack.ErrInvalidInput):
			u.metrics.IncAllocation(metrics.OutcomeRejected)
		default:
			u.metrics.IncAllocation(metrics.OutcomeFailed)
		}
		return nil, err
	}

	if err = u.repo.SaveAllocation(ctx, alloc); err != nil {
		u.metrics.IncAllocation(metrics.OutcomeFailed)
		return nil, err
	}
	u.store(ctx, key, alloc)
	u.metrics.IncAllocation(metrics.OutcomeSolved)

	u.logger.Info("allocation solved",
		slog.String("id", alloc.ID),
		slog.Int64("capacity", alloc.Capacity),
		slog.Int64("total_value", alloc.TotalValue),
		slog.Int64("impressions_used", alloc.ImpressionsUsed),
		slog.Int("campaigns", alloc.Retained),
	)
	return alloc, nil
}

// solve runs the solver pipeline and converts its solution into an
// allocation with a fresh id.
func (u *PlannerUseCase) solve(ctx context.Context, campaigns []domain.Campaign, capacity int64, prioritize, prune bool) (*domain.Allocation, error) {
	start := time.Now()

	s, err := knapsack.New(campaigns, capacity)
	if err != nil {
		return nil, err
	}

	if u.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
		defer cancel()
	}
	if u.inFlight != nil {
		if err = u.inFlight.Acquire(ctx, capacity+1); err != nil {
			return nil, fmt.Errorf("waiting for solver memory: %w", err)
		}
		defer u.inFlight.Release(capacity + 1)
	}

	if prioritize {
		if err = s.ApplyPriorityOrdering(); err != nil {
			return nil, err
		}
	}
	var removed int
	if prune {
		if removed, err = s.ApplyDominancePruning(); err != nil {
			return nil, err
		}
	}

	if err = s.FillContext(ctx); err != nil {
		return nil, err
	}
	sol, err := s.Solution()
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	u.metrics.ObserveSolve(elapsed, len(campaigns), removed)
	u.logger.Debug("solver finished",
		slog.Int64("capacity", capacity),
		slog.Int("considered", len(campaigns)),
		slog.Int("pruned", removed),
		slog.Duration("elapsed", elapsed),
	)

	alloc := &domain.Allocation{
		ID:              uuid.NewString(),
		Capacity:        sol.Capacity,
		TotalValue:      sol.TotalValue,
		ImpressionsUsed: sol.ImpressionsUsed,
		Prioritized:     prioritize,
		Pruned:          prune,
		Considered:      len(campaigns),
		Retained:        len(campaigns) - removed,
		Items:           make([]domain.AllocationItem, 0, len(sol.Selections)),
		CreatedAt:       time.Now().UTC(),
	}
	for _, sel := range sol.Selections {
		alloc.Items = append(alloc.Items, domain.AllocationItem{Campaign: sel.Campaign, Count: sel.Count})
	}
	return alloc, nil
}

// resolveCampaigns returns the inline campaigns of req or loads them from
// the catalogue. Every requested id must exist. Inline campaigns are not
// catalogue rows, so any id they carry is dropped.
func (u *PlannerUseCase) resolveCampaigns(ctx context.Context, req port.AllocateReq) ([]domain.Campaign, error) {
	if len(req.Campaigns) > 0 {
		inline := slices.Clone(req.Campaigns)
		for i := range inline {
			inline[i].ID = 0
		}
		return inline, nil
	}
	ids := slices.Clone(req.CampaignIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	campaigns, err := u.repo.ListCampaigns(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 && len(campaigns) != len(ids) {
		for _, id := range ids {
			if !slices.ContainsFunc(campaigns, func(c domain.Campaign) bool { return c.ID == id }) {
				return nil, fmt.Errorf("%w: id %d", port.ErrCampaignNotFound, id)
			}
		}
	}
	return campaigns, nil
}

// lookup returns a cached allocation. Cache failures are logged and
// treated as a miss.
func (u *PlannerUseCase) lookup(ctx context.Context, key string) *domain.Allocation {
	if u.cache == nil {
		return nil
	}
	alloc, err := u.cache.Get(ctx, key)
	if err != nil {
		u.logger.Warn("allocation cache read failed", slog.Any("error", err))
		return nil
	}
	return alloc
}

func (u *PlannerUseCase) store(ctx context.Context, key string, alloc *domain.Allocation) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, key, alloc); err != nil {
		u.logger.Warn("allocation cache write failed", slog.String("id", alloc.ID), slog.Any("error", err))
	}
}

// GetAllocation returns a stored allocation by id.
func (u *PlannerUseCase) GetAllocation(ctx context.Context, id string) (*domain.Allocation, error) {
	alloc, err := u.repo.GetAllocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, port.ErrAllocationNotFound
	}
	return alloc, nil
}

// CreateCampaign validates and stores a catalogue campaign. A campaign must
// name its customer, consume at least one impression and have a
// non-negative value.
func (u *PlannerUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	switch {
	case c.Customer == "":
		return nil, fmt.Errorf("%w: customer is required", port.ErrInvalidCampaign)
	case c.Impressions <= 0:
		return nil, fmt.Errorf("%w: impressions must be positive", port.ErrInvalidCampaign)
	case c.Value < 0:
		return nil, fmt.Errorf("%w: value must not be negative", port.ErrInvalidCampaign)
	}
	c.ID = 0
	if err := u.repo.CreateCampaign(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns the whole catalogue.
func (u *PlannerUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, nil)
}
