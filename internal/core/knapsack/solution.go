package knapsack

import "mesa-planner/internal/core/domain"

// Solution is the result of a solve. Selections are listed in working-set
// order and only contain campaigns booked at least once.
type Solution struct {
	TotalValue      int64
	Capacity        int64
	ImpressionsUsed int64
	Selections      []Selection
}

// Selection is a campaign together with the number of units booked.
type Selection struct {
	Campaign domain.Campaign
	Count    int64
}

// Counts returns the selections keyed by campaign. Structurally equal
// campaigns share one entry.
func (s Solution) Counts() map[domain.Campaign]int64 {
	out := make(map[domain.Campaign]int64, len(s.Selections))
	for _, sel := range s.Selections {
		out[sel.Campaign] += sel.Count
	}
	return out
}
