package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-planner/internal/core/domain"
)

// PlannerRepository implements port.PlannerRepository using pgxpool for PostgreSQL.
type PlannerRepository struct {
	pool *pgxpool.Pool
}

// NewPlannerRepository returns a new repository instance.
func NewPlannerRepository(pool *pgxpool.Pool) *PlannerRepository {
	return &PlannerRepository{pool: pool}
}

var allocationItemColumns = []string{"allocation_id", "position", "campaign_id", "customer", "impressions", "value", "count"}

// ListCampaigns returns campaigns by id, or every campaign when ids is empty.
func (r *PlannerRepository) ListCampaigns(ctx context.Context, ids []int64) ([]domain.Campaign, error) {
	query := `SELECT id, customer, impressions, value FROM campaigns`
	var args []any
	if len(ids) > 0 {
		query += ` WHERE id = ANY($1)`
		args = append(args, ids)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Customer, &c.Impressions, &c.Value)
		return c, err
	})
}

// CreateCampaign inserts a campaign and sets its generated id.
func (r *PlannerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (customer, impressions, value, created_at) VALUES ($1,$2,$3,now()) RETURNING id`,
		c.Customer, c.Impressions, c.Value,
	).Scan(&c.ID)
}

// SaveAllocation inserts an allocation and copies its items in one
// transaction.
func (r *PlannerRepository) SaveAllocation(ctx context.Context, a *domain.Allocation) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO allocations
    (id, capacity, total_value, impressions_used, prioritized, pruned, campaigns_considered, campaigns_retained, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.Capacity, a.TotalValue, a.ImpressionsUsed, a.Prioritized, a.Pruned, a.Considered, a.Retained, a.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"allocation_items"}, allocationItemColumns,
		pgx.CopyFromSlice(len(a.Items), func(i int) ([]any, error) {
			it := a.Items[i]
			// inline campaigns have no catalogue row
			var campaignID *int64
			if it.Campaign.ID != 0 {
				campaignID = &it.Campaign.ID
			}
			return []any{a.ID, i, campaignID, it.Campaign.Customer, it.Campaign.Impressions, it.Campaign.Value, it.Count}, nil
		}))
	return err
}

// GetAllocation returns an allocation with its items, or nil when the id
// is unknown.
func (r *PlannerRepository) GetAllocation(ctx context.Context, id string) (*domain.Allocation, error) {
	var a domain.Allocation
	err := r.pool.QueryRow(ctx, `SELECT id, capacity, total_value, impressions_used, prioritized, pruned, campaigns_considered, campaigns_retained, created_at
FROM allocations WHERE id = $1`, id).
		Scan(&a.ID, &a.Capacity, &a.TotalValue, &a.ImpressionsUsed, &a.Prioritized, &a.Pruned, &a.Considered, &a.Retained, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT campaign_id, customer, impressions, value, count
FROM allocation_items WHERE allocation_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	a.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AllocationItem, error) {
		var (
			it         domain.AllocationItem
			campaignID *int64
		)
		err := row.Scan(&campaignID, &it.Campaign.Customer, &it.Campaign.Impressions, &it.Campaign.Value, &it.Count)
		if campaignID != nil {
			it.Campaign.ID = *campaignID
		}
		return it, err
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
