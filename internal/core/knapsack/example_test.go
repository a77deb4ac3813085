package knapsack_test

import (
	"context"
	"fmt"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/knapsack"
)

func ExampleSolver() {
	campaigns := []domain.Campaign{
		{Customer: "Acme", Impressions: 2, Value: 3},
		{Customer: "Lolcat", Impressions: 3, Value: 5},
	}
	s, err := knapsack.New(campaigns, 7)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = s.ApplyPriorityOrdering(); err != nil {
		fmt.Println(err)
		return
	}
	if _, err = s.ApplyDominancePruning(); err != nil {
		fmt.Println(err)
		return
	}
	if err = s.FillContext(context.Background()); err != nil {
		fmt.Println(err)
		return
	}
	sol, err := s.Solution()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.TotalValue, sol.ImpressionsUsed)
	// Output: 11 7
}
