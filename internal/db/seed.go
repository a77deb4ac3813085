package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-planner/internal/core/domain"
)

// DemoCapacity is the monthly impression inventory the demo catalogue is
// sized for.
const DemoCapacity = 32356000

// demoCampaigns is a small catalogue of campaigns competing for a month of
// inventory. Impressions and values are per booked unit.
var demoCampaigns = []domain.Campaign{
	{ID: 1, Customer: "Acme", Impressions: 1000000, Value: 5000},
	{ID: 2, Customer: "Lolcat", Impressions: 2000000, Value: 9000},
	{ID: 3, Customer: "Mousemart", Impressions: 3000000, Value: 20000},
	{ID: 4, Customer: "Dinner-Inc", Impressions: 4500000, Value: 25500},
	{ID: 5, Customer: "Bebop", Impressions: 750000, Value: 3100},
	{ID: 6, Customer: "Quux-Media", Impressions: 6000000, Value: 40000},
}

// Seed inserts the demo catalogue into the campaigns table. Existing rows
// are left untouched, so seeding is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for _, c := range demoCampaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns (id, customer, impressions, value, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			c.ID, c.Customer, c.Impressions, c.Value)
		if err != nil {
			return err
		}
	}
	// keep the identity sequence ahead of the explicit demo ids
	_, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('campaigns', 'id'), GREATEST((SELECT max(id) FROM campaigns), 1))`)
	return err
}
