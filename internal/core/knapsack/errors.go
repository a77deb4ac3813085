package knapsack

import "errors"

// Sentinel errors returned by the solver. Callers match them with errors.Is;
// the returned errors wrap them with the offending detail.
var (
	// ErrInvalidArgument is returned for a negative capacity.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidInput is returned when a campaign has a non-positive
	// impression cost or a negative value, or when the plan value
	// overflows int64.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIllegalState is returned when solver operations are called out of
	// order.
	ErrIllegalState = errors.New("illegal state")
)
