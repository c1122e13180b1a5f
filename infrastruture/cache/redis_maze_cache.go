package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const genLockSuffix = ":gen_lock"

// RedisMazeCache stores rendered mazes in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client must not be nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %d", ttlSeconds)
	}

	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Remember returns the maze stored under key. On a miss it generates the maze
// while holding a lock on the key, so concurrent misses generate once.
func (c *RedisMazeCache) Remember(ctx context.Context, key string, gen func() (string, error)) (string, bool, error) {
	if val, ok, err := c.get(ctx, key); err != nil || ok {
		return val, ok, err
	}

	mutex := c.locker.NewMutex(key + genLockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return "", false, fmt.Errorf("locking %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another holder of the lock may have filled the key meanwhile.
	if val, ok, err := c.get(ctx, key); err != nil || ok {
		return val, ok, err
	}

	val, err := gen()
	if err != nil {
		return "", false, err
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return val, false, fmt.Errorf("storing %s: %w", key, err)
	}

	return val, false, nil
}

// get reads key, reporting a miss as ok == false.
func (c *RedisMazeCache) get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
