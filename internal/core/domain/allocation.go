package domain

import "time"

// Allocation is a solved impression plan. It records the capacity that was
// planned for, the optimal value reached and how many units of each
// campaign make up that value.
type Allocation struct {
	ID              string           `json:"id"`
	Capacity        int64            `json:"capacity"`
	TotalValue      int64            `json:"total_value"`
	ImpressionsUsed int64            `json:"impressions_used"`
	Prioritized     bool             `json:"prioritized"`
	Pruned          bool             `json:"pruned"`
	Considered      int              `json:"campaigns_considered"`
	Retained        int              `json:"campaigns_retained"`
	Items           []AllocationItem `json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
}

// AllocationItem is one line of an allocation: a campaign and the number of
// times it is booked.
type AllocationItem struct {
	Campaign Campaign `json:"campaign"`
	Count    int64    `json:"count"`
}

// Impressions returns the impressions consumed by this line.
func (i AllocationItem) Impressions() int64 {
	return i.Count * i.Campaign.Impressions
}

// Value returns the value earned by this line.
func (i AllocationItem) Value() int64 {
	return i.Count * i.Campaign.Value
}
