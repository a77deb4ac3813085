package db

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"mesa-planner/internal/config/configs"
)

// NewRedisClient connects to the configured Redis server. Addr may be a
// redis:// URL or a plain host:port. The client is pinged before it is
// returned and closed again when the ping fails.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts := &redis.Options{Addr: cfg.Addr}
	if strings.Contains(cfg.Addr, "://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
