package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wigu/internal/model"
)

// ProgressCache keeps the hot per-session progress record in Redis so the
// incremental updates on every response do not round-trip to Mongo.
type ProgressCache interface {
	Get(ctx context.Context, sessionID string) (*model.CareerProgress, error)
	Set(ctx context.Context, progress *model.CareerProgress) error
	Invalidate(ctx context.Context, sessionID string) error
}

type progressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates a new progress cache
func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *progressCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:progress", sessionID)
}

func (c *progressCache) Get(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var progress model.CareerProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *progressCache) Set(ctx context.Context, progress *model.CareerProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(progress.SessionID), data, c.ttl).Err()
}

func (c *progressCache) Invalidate(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
