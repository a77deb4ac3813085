package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"mesa-planner/internal/core/domain"
)

const cacheKeyPrefix = "alloc:"

// cacheKey digests everything that determines an allocation: capacity,
// preprocessing flags and the campaigns in request order. Order matters
// because it decides ties between equally valued campaigns.
func cacheKey(capacity int64, prioritize, prune bool, campaigns []domain.Campaign) string {
	h := sha256.New()
	fmt.Fprintf(h, "capacity=%d;prioritize=%t;prune=%t\n", capacity, prioritize, prune)
	for _, c := range campaigns {
		fmt.Fprintf(h, "%d|%q|%d|%d\n", c.ID, c.Customer, c.Impressions, c.Value)
	}
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
