package knapsack

import (
	"math/bits"
	"slices"

	"mesa-planner/internal/core/domain"
)

// CompareByRatio orders campaigns by descending value per impression. The
// ratios are compared by cross-multiplication in 128 bits so no precision
// is lost and large values do not wrap. It returns a negative number when
// a has the better ratio, a positive number when b has, and zero on a tie.
func CompareByRatio(a, b domain.Campaign) int {
	return -compareProducts(a.Value, b.Impressions, b.Value, a.Impressions)
}

// SortByRatio stable-sorts campaigns in place with CompareByRatio. Campaigns
// with equal ratios keep their input order.
func SortByRatio(campaigns []domain.Campaign) {
	slices.SortStableFunc(campaigns, CompareByRatio)
}

// compareProducts compares x1*y1 with x2*y2 exactly and returns -1, 0 or 1.
func compareProducts(x1, y1, x2, y2 int64) int {
	s1, s2 := sign(x1)*sign(y1), sign(x2)*sign(y2)
	if s1 != s2 {
		if s1 < s2 {
			return -1
		}
		return 1
	}
	if s1 == 0 {
		return 0
	}
	hi1, lo1 := bits.Mul64(abs(x1), abs(y1))
	hi2, lo2 := bits.Mul64(abs(x2), abs(y2))
	c := 0
	switch {
	case hi1 < hi2, hi1 == hi2 && lo1 < lo2:
		c = -1
	case hi1 > hi2, hi1 == hi2 && lo1 > lo2:
		c = 1
	}
	// for negative products the larger magnitude is the smaller number
	return c * s1
}

func sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// abs returns |x| as a uint64; math.MinInt64 maps to 1<<63.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
