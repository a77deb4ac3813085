package configs

import "time"

// Solver bounds and tunes the knapsack solver. MaxCapacity caps the
// impression capacity of a single request because the solver allocates
// two tables of that size, 16 bytes per level. MaxInFlight caps the levels
// held by all concurrent solves together; requests wait for room and the
// wait counts against Timeout. Prioritize and Prune are the defaults for
// the preprocessing steps when a request does not set them. Timeout bounds
// waiting for room plus a single fill; zero disables it.
type Solver struct {
	MaxCapacity int64         `env:"MAX_CAPACITY" envDefault:"33554432"`
	MaxInFlight int64         `env:"MAX_IN_FLIGHT" envDefault:"67108864"`
	Prioritize  bool          `env:"PRIORITIZE" envDefault:"true"`
	Prune       bool          `env:"PRUNE" envDefault:"true"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
