package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wigu/internal/model"
)

// SynthesisCache keeps the latest synthesis snapshot per session so repeated
// dashboard reads skip Mongo between regenerations.
type SynthesisCache interface {
	GetLatest(ctx context.Context, sessionID string) (*model.CareerSynthesis, error)
	SetLatest(ctx context.Context, synthesis *model.CareerSynthesis) error
}

type synthesisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSynthesisCache creates a new synthesis cache
func NewSynthesisCache(client *redis.Client) SynthesisCache {
	return &synthesisCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *synthesisCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:synthesis", sessionID)
}

func (c *synthesisCache) GetLatest(ctx context.Context, sessionID string) (*model.CareerSynthesis, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var synthesis model.CareerSynthesis
	if err := json.Unmarshal([]byte(data), &synthesis); err != nil {
		return nil, err
	}
	return &synthesis, nil
}

func (c *synthesisCache) SetLatest(ctx context.Context, synthesis *model.CareerSynthesis) error {
	data, err := json.Marshal(synthesis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(synthesis.SessionID), data, c.ttl).Err()
}
