package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_NoClient(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	val, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val)

	n, err := repo.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, repo.Delete(ctx, "k"))
}

func TestRepository_Incr_Unreachable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	n, err := NewRepository(client).Incr(context.Background(), "k", time.Minute)
	assert.Error(t, err)
	assert.Zero(t, n)
}

// Needs a live server; set REDIS_TEST_ADDR to run.
func TestRepository_Incr_KeepsFirstTTL(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	key := "test:incr:" + t.Name()
	repo := NewRepository(client)
	require.NoError(t, repo.Delete(ctx, key))
	defer repo.Delete(ctx, key)

	n, err := repo.Incr(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	first, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, first, time.Duration(0))

	time.Sleep(1100 * time.Millisecond)

	n, err = repo.Incr(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	second, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Less(t, second, first)
}
