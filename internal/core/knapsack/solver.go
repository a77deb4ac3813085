// Package knapsack solves the unbounded knapsack problem over advertising
// campaigns: given an impression capacity it finds how many units of each
// campaign to book so that the total value is maximal. Every campaign may be
// booked any number of times.
//
// A Solver is used once. Optional preprocessing (ApplyPriorityOrdering,
// ApplyDominancePruning) runs first, then Fill computes the tables in
// O(n·C) and Solution walks them back into the booked campaigns.
//
//	s, err := knapsack.New(campaigns, 32356000)
//	if err != nil {
//	    return err
//	}
//	if err = s.ApplyPriorityOrdering(); err != nil {
//	    return err
//	}
//	if _, err = s.ApplyDominancePruning(); err != nil {
//	    return err
//	}
//	if err = s.FillContext(ctx); err != nil {
//	    return err
//	}
//	sol, err := s.Solution()
//
// A Solver is not safe for concurrent use.
package knapsack

import (
	"context"
	"fmt"

	"mesa-planner/internal/core/domain"
)

// none marks a capacity level where no campaign was chosen.
const none = -1

// cancelCheckInterval is the number of capacity levels filled between two
// context checks in FillContext.
const cancelCheckInterval = 4096

// Solver holds the working set of campaigns and the DP tables for a single
// solve. It owns a private copy of the campaigns, so preprocessing never
// touches the caller's slice.
type Solver struct {
	campaigns []domain.Campaign
	capacity  int64

	// best[k] is the maximum value reachable with at most k impressions.
	best []int64
	// choice[k] is the index in campaigns of the campaign that produced
	// best[k], or none.
	choice []int
	filled bool
}

// New returns a solver over a copy of campaigns for the given impression
// capacity. A negative capacity yields ErrInvalidArgument.
func New(campaigns []domain.Campaign, capacity int64) (*Solver, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	return &Solver{
		campaigns: append([]domain.Campaign(nil), campaigns...),
		capacity:  capacity,
	}, nil
}

// Capacity returns the impression capacity the solver plans for.
func (s *Solver) Capacity() int64 {
	return s.capacity
}

// Campaigns returns a copy of the current working set, in the order the
// fill evaluates it.
func (s *Solver) Campaigns() []domain.Campaign {
	return append([]domain.Campaign(nil), s.campaigns...)
}

// ApplyPriorityOrdering sorts the working set by descending value per
// impression. It does not change the optimal value, only which of several
// equally valued campaigns the fill picks. It must run before Fill.
func (s *Solver) ApplyPriorityOrdering() error {
	if s.filled {
		return fmt.Errorf("%w: ordering requested after fill", ErrIllegalState)
	}
	SortByRatio(s.campaigns)
	return nil
}

// ApplyDominancePruning removes every campaign dominated by a campaign
// earlier in the working set and returns how many were removed. It prunes
// most after ApplyPriorityOrdering but is correct in any order. It must run
// before Fill. On error the working set is left untouched.
func (s *Solver) ApplyDominancePruning() (int, error) {
	if s.filled {
		return 0, fmt.Errorf("%w: pruning requested after fill", ErrIllegalState)
	}
	if err := s.validate(); err != nil {
		return 0, err
	}
	before := len(s.campaigns)
	s.campaigns = prune(s.campaigns)
	return before - len(s.campaigns), nil
}

// Fill computes the DP tables. See FillContext.
func (s *Solver) Fill() error {
	return s.FillContext(context.Background())
}

// FillContext computes best and choice for every capacity level from 1 to
// the solver capacity. Levels are visited in ascending order, which is what
// lets a campaign be reused: best[k-cost] may already contain it.
//
// Within a level the first campaign in working-set order that strictly
// improves best[k] wins; a later campaign reaching the same value does not
// replace it. The optimal value does not depend on this, the reported
// campaigns do.
//
// The context is checked periodically. When it is done the partial tables
// are dropped and the context error is returned wrapped. A plan whose value
// does not fit in an int64 fails with ErrInvalidInput.
func (s *Solver) FillContext(ctx context.Context) error {
	if s.filled {
		return fmt.Errorf("%w: tables already filled", ErrIllegalState)
	}
	if err := s.validate(); err != nil {
		return err
	}

	best := make([]int64, s.capacity+1)
	choice := make([]int, s.capacity+1)
	choice[0] = none

	for k := int64(1); k <= s.capacity; k++ {
		if k%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("fill interrupted at level %d: %w", k, err)
			}
		}
		choice[k] = none
		for idx, c := range s.campaigns {
			if c.Impressions > k {
				continue
			}
			rest := best[k-c.Impressions]
			candidate := c.Value + rest
			if candidate < rest {
				return fmt.Errorf("%w: value of campaign %d (%q) overflows int64 at level %d", ErrInvalidInput, idx, c.Customer, k)
			}
			if candidate > best[k] {
				best[k] = candidate
				choice[k] = idx
			}
		}
	}

	s.best, s.choice, s.filled = best, choice, true
	return nil
}

// Solution walks the choice table back from the full capacity and returns
// the booked campaigns. It fails with ErrIllegalState before Fill.
func (s *Solver) Solution() (Solution, error) {
	if !s.filled {
		return Solution{}, fmt.Errorf("%w: solution requested before fill", ErrIllegalState)
	}

	counts := make([]int64, len(s.campaigns))
	var used int64
	for i := s.capacity; i >= 0 && s.choice[i] != none; {
		idx := s.choice[i]
		counts[idx]++
		used += s.campaigns[idx].Impressions
		i -= s.campaigns[idx].Impressions
	}

	sol := Solution{
		TotalValue:      s.best[s.capacity],
		Capacity:        s.capacity,
		ImpressionsUsed: used,
	}
	for idx, n := range counts {
		if n > 0 {
			sol.Selections = append(sol.Selections, Selection{Campaign: s.campaigns[idx], Count: n})
		}
	}
	return sol, nil
}

func (s *Solver) validate() error {
	for idx, c := range s.campaigns {
		if c.Impressions <= 0 {
			return fmt.Errorf("%w: campaign %d (%q) has %d impressions", ErrInvalidInput, idx, c.Customer, c.Impressions)
		}
		if c.Value < 0 {
			return fmt.Errorf("%w: campaign %d (%q) has negative value %d", ErrInvalidInput, idx, c.Customer, c.Value)
		}
	}
	return nil
}
