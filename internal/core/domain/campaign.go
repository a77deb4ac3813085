package domain

// Campaign represents an advertising campaign offered to the planner.
// Impressions is the number of impressions one unit of the campaign
// consumes and Value is what that unit earns, both in integer units.
// Campaign is a comparable value type: two campaigns are equal when every
// field matches, so it can be used as a map key.
type Campaign struct {
	ID          int64  `json:"id,omitempty"`
	Customer    string `json:"customer"`
	Impressions int64  `json:"impressions"`
	Value       int64  `json:"value"`
}
