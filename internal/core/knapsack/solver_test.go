package knapsack

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/core/domain"
)

func campaign(customer string, impressions, value int64) domain.Campaign {
	return domain.Campaign{Customer: customer, Impressions: impressions, Value: value}
}

// bruteForce enumerates every multiset of campaigns that fits in capacity.
func bruteForce(campaigns []domain.Campaign, capacity int64) int64 {
	var walk func(idx int, left int64) int64
	walk = func(idx int, left int64) int64 {
		if idx == len(campaigns) {
			return 0
		}
		c := campaigns[idx]
		var best int64
		for n := int64(0); n*c.Impressions <= left; n++ {
			if v := n*c.Value + walk(idx+1, left-n*c.Impressions); v > best {
				best = v
			}
		}
		return best
	}
	return walk(0, capacity)
}

type pipeline struct {
	name  string
	order bool
	prune bool
}

var pipelines = []pipeline{
	{name: "plain"},
	{name: "ordered", order: true},
	{name: "pruned", prune: true},
	{name: "ordered+pruned", order: true, prune: true},
}

func solve(t *testing.T, campaigns []domain.Campaign, capacity int64, p pipeline) (*Solver, Solution) {
	t.Helper()
	s, err := New(campaigns, capacity)
	require.NoError(t, err)
	if p.order {
		require.NoError(t, s.ApplyPriorityOrdering())
	}
	if p.prune {
		_, err = s.ApplyDominancePruning()
		require.NoError(t, err)
	}
	require.NoError(t, s.Fill())
	sol, err := s.Solution()
	require.NoError(t, err)
	return s, sol
}

func assertConsistent(t *testing.T, s *Solver, sol Solution) {
	t.Helper()
	var cost, value int64
	for _, sel := range sol.Selections {
		require.Positive(t, sel.Count)
		cost += sel.Count * sel.Campaign.Impressions
		value += sel.Count * sel.Campaign.Value
	}
	assert.LessOrEqual(t, cost, sol.Capacity)
	assert.Equal(t, cost, sol.ImpressionsUsed)
	assert.Equal(t, s.best[s.capacity], value)
	assert.Equal(t, sol.TotalValue, value)
	assert.Zero(t, s.best[0])
	for k := int64(1); k <= s.capacity; k++ {
		assert.GreaterOrEqual(t, s.best[k], s.best[k-1], "best must not decrease at level %d", k)
	}
}

func TestTwoCampaignScenario(t *testing.T) {
	a := campaign("A", 2, 3)
	b := campaign("B", 3, 5)

	for _, p := range pipelines {
		t.Run(p.name, func(t *testing.T) {
			s, sol := solve(t, []domain.Campaign{a, b}, 7, p)
			assertConsistent(t, s, sol)
			assert.EqualValues(t, 11, sol.TotalValue)
			assert.EqualValues(t, 7, sol.ImpressionsUsed)
			assert.Equal(t, map[domain.Campaign]int64{a: 2, b: 1}, sol.Counts())
			assert.Equal(t, bruteForce([]domain.Campaign{a, b}, 7), sol.TotalValue)
		})
	}
}

func TestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 400; iter++ {
		n := rng.Intn(6)
		campaigns := make([]domain.Campaign, n)
		for i := range campaigns {
			campaigns[i] = campaign(string(rune('A'+i)), int64(rng.Intn(8)+1), int64(rng.Intn(16)))
		}
		capacity := int64(rng.Intn(21))
		want := bruteForce(campaigns, capacity)

		for _, p := range pipelines {
			s, sol := solve(t, campaigns, capacity, p)
			assertConsistent(t, s, sol)
			require.Equal(t, want, sol.TotalValue, "iteration %d, pipeline %s, campaigns %v, capacity %d", iter, p.name, campaigns, capacity)
		}
	}
}

func TestEmptyCampaigns(t *testing.T) {
	for _, capacity := range []int64{0, 1, 17} {
		s, sol := solve(t, nil, capacity, pipelines[3])
		assertConsistent(t, s, sol)
		assert.Zero(t, sol.TotalValue)
		assert.Empty(t, sol.Selections)
		for k := range s.best {
			assert.Zero(t, s.best[k])
		}
	}
}

func TestZeroCapacity(t *testing.T) {
	s, sol := solve(t, []domain.Campaign{campaign("A", 1, 10)}, 0, pipelines[0])
	assertConsistent(t, s, sol)
	assert.Zero(t, sol.TotalValue)
	assert.Zero(t, sol.ImpressionsUsed)
	assert.Empty(t, sol.Selections)
}

func TestNegativeCapacity(t *testing.T) {
	_, err := New(nil, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNonPositiveCost(t *testing.T) {
	for _, cost := range []int64{0, -3} {
		s, err := New([]domain.Campaign{campaign("A", 2, 3), campaign("bad", cost, 5)}, 10)
		require.NoError(t, err)

		_, err = s.ApplyDominancePruning()
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Len(t, s.Campaigns(), 2)

		require.ErrorIs(t, s.Fill(), ErrInvalidInput)
		_, err = s.Solution()
		require.ErrorIs(t, err, ErrIllegalState)
	}
}

func TestNegativeValue(t *testing.T) {
	s, err := New([]domain.Campaign{campaign("A", 2, 3), campaign("neg", 1, -5)}, 4)
	require.NoError(t, err)

	_, err = s.ApplyDominancePruning()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, s.Campaigns(), 2)

	err = s.Fill()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "negative value")
}

func TestValueOverflow(t *testing.T) {
	s, err := New([]domain.Campaign{campaign("huge", 1, 1<<62)}, 4)
	require.NoError(t, err)

	err = s.Fill()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "level 2")

	_, err = s.Solution()
	require.ErrorIs(t, err, ErrIllegalState)
}

func TestLargeValuesWithoutOverflow(t *testing.T) {
	s, err := New([]domain.Campaign{campaign("big", 2, 1<<61), campaign("small", 1, 1)}, 5)
	require.NoError(t, err)
	require.NoError(t, s.Fill())

	sol, err := s.Solution()
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62)+1, sol.TotalValue)
	assertConsistent(t, s, sol)
}

func TestCallOrder(t *testing.T) {
	s, err := New([]domain.Campaign{campaign("A", 2, 3)}, 5)
	require.NoError(t, err)

	_, err = s.Solution()
	require.ErrorIs(t, err, ErrIllegalState)

	require.NoError(t, s.Fill())
	require.ErrorIs(t, s.Fill(), ErrIllegalState)
	require.ErrorIs(t, s.ApplyPriorityOrdering(), ErrIllegalState)
	_, err = s.ApplyDominancePruning()
	require.ErrorIs(t, err, ErrIllegalState)

	sol, err := s.Solution()
	require.NoError(t, err)
	assert.EqualValues(t, 6, sol.TotalValue)
}

func TestFillContextCancelled(t *testing.T) {
	s, err := New([]domain.Campaign{campaign("A", 3, 4)}, 3*cancelCheckInterval)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.FillContext(ctx), context.Canceled)

	_, err = s.Solution()
	require.ErrorIs(t, err, ErrIllegalState)

	// the solver is still usable after an interrupted fill
	require.NoError(t, s.Fill())
	sol, err := s.Solution()
	require.NoError(t, err)
	assert.EqualValues(t, cancelCheckInterval*4, sol.TotalValue)
}

func TestTieBreakFollowsWorkingSetOrder(t *testing.T) {
	x := campaign("X", 2, 4)
	y := campaign("Y", 1, 2)

	_, sol := solve(t, []domain.Campaign{x, y}, 2, pipelines[0])
	assert.Equal(t, map[domain.Campaign]int64{x: 1}, sol.Counts())

	_, sol = solve(t, []domain.Campaign{y, x}, 2, pipelines[0])
	assert.Equal(t, map[domain.Campaign]int64{y: 2}, sol.Counts())
}

func TestCallerSliceUntouched(t *testing.T) {
	in := []domain.Campaign{
		campaign("low", 5, 1),
		campaign("high", 1, 9),
		campaign("mid", 2, 5),
	}
	orig := append([]domain.Campaign(nil), in...)

	_, _ = solve(t, in, 10, pipelines[3])
	assert.Equal(t, orig, in)
}
