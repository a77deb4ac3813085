package configs

import "time"

// Redis configures the allocation cache. Caching is disabled when Addr is
// empty.
type Redis struct {
	// Addr is either host:port or a redis:// URL.
	Addr string        `env:"ADDRESS"`
	TTL  time.Duration `env:"TTL" envDefault:"1h"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
