package knapsack

import (
	"math"
	"math/bits"

	"mesa-planner/internal/core/domain"
)

// Dominates reports whether campaign i makes campaign j redundant in every
// optimal plan: floor(j.Impressions/i.Impressions) units of i fit in the
// impressions of one unit of j and earn at least j's value. The relation is
// transitive. Impressions must be positive and values non-negative.
func Dominates(i, j domain.Campaign) bool {
	units := j.Impressions / i.Impressions
	if units <= 0 || i.Value <= 0 {
		return j.Value <= 0
	}
	hi, lo := bits.Mul64(uint64(units), uint64(i.Value))
	if hi != 0 || lo > math.MaxInt64 {
		return true
	}
	return int64(lo) >= j.Value
}

// prune keeps every campaign that is not dominated by a campaign kept
// before it. Each candidate is tested against all retained predecessors.
func prune(campaigns []domain.Campaign) []domain.Campaign {
	kept := make([]domain.Campaign, 0, len(campaigns))
next:
	for _, c := range campaigns {
		for _, k := range kept {
			if Dominates(k, c) {
				continue next
			}
		}
		kept = append(kept, c)
	}
	return kept
}
