package highlights

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/types"
)

const keyPrefix = "highlights:"

// RedisCache keeps highlights in Redis as JSON. With a backing Store it reads through
// and writes through; without one Redis is the store of record.
type RedisCache struct {
	client  redis.Cmdable
	backing Store
	ttl     time.Duration
	logger  logging.Logger
}

// NewRedisCache creates a RedisCache. backing may be nil; a zero ttl never expires entries.
func NewRedisCache(client redis.Cmdable, backing Store, ttl time.Duration, logger logging.Logger) *RedisCache {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RedisCache{client: client, backing: backing, ttl: ttl, logger: logger}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, &StoreError{Message: "invalid redis url", Cause: err}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &StoreError{Message: "failed to ping redis", Cause: err}
	}
	return client, nil
}

func cacheKey(writingID string) string {
	return keyPrefix + writingID
}

func (c *RedisCache) Get(ctx context.Context, writingID string) ([]types.Highlight, error) {
	if err := checkID(writingID); err != nil {
		return nil, err
	}

	data, err := c.client.Get(ctx, cacheKey(writingID)).Bytes()
	switch {
	case err == nil:
		var hs []types.Highlight
		if err := json.Unmarshal(data, &hs); err == nil {
			return hs, nil
		}
		c.logger.Warn("discarding undecodable cached highlights", logging.String("writing_id", writingID))
	case errors.Is(err, redis.Nil):
	default:
		if c.backing == nil {
			return nil, &StoreError{Message: "failed to read highlights", Cause: err}
		}
		c.logger.Warn("highlight cache read failed", logging.String("writing_id", writingID), logging.Err(err))
		return c.backing.Get(ctx, writingID)
	}

	if c.backing == nil {
		return []types.Highlight{}, nil
	}
	hs, err := c.backing.Get(ctx, writingID)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, writingID, hs)
	return hs, nil
}

// Put writes to the backing store first, then refreshes the cache.
func (c *RedisCache) Put(ctx context.Context, writingID string, highlights []types.Highlight) error {
	if err := checkID(writingID); err != nil {
		return err
	}
	if highlights == nil {
		highlights = []types.Highlight{}
	}

	if c.backing != nil {
		if err := c.backing.Put(ctx, writingID, highlights); err != nil {
			return err
		}
		c.fill(ctx, writingID, highlights)
		return nil
	}

	data, err := json.Marshal(highlights)
	if err != nil {
		return &StoreError{Message: "failed to encode highlights", Cause: err}
	}
	if err := c.client.Set(ctx, cacheKey(writingID), string(data), c.ttl).Err(); err != nil {
		return &StoreError{Message: "failed to write highlights", Cause: err}
	}
	return nil
}

// fill caches highlights loaded from or written to the backing store. Failures only log.
func (c *RedisCache) fill(ctx context.Context, writingID string, highlights []types.Highlight) {
	data, err := json.Marshal(highlights)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(writingID), string(data), c.ttl).Err(); err != nil {
		c.logger.Warn("highlight cache write failed", logging.String("writing_id", writingID), logging.Err(err))
	}
}
