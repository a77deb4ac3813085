package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/config/configs"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	for _, addr := range []string{mr.Addr(), "redis://" + mr.Addr() + "/0"} {
		client, err := NewRedisClient(ctx, configs.Redis{Addr: addr})
		require.NoError(t, err, addr)
		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		assert.Equal(t, "v", client.Get(ctx, "k").Val())
		require.NoError(t, client.Close())
	}
}

func TestNewRedisClientErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewRedisClient(ctx, configs.Redis{Addr: "redis://:bad:url"})
	require.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisClient(ctx, configs.Redis{Addr: addr})
	require.Error(t, err)
}
