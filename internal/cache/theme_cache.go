package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ThemeCache tracks per-session theme frequencies in a Redis hash. The
// counters feed the synthesis prompts with which themes keep recurring.
type ThemeCache interface {
	IncrementThemes(ctx context.Context, sessionID string, themes []string) error
	GetThemeCounts(ctx context.Context, sessionID string) (map[string]int, error)
}

type themeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewThemeCache creates a new theme cache
func NewThemeCache(client *redis.Client) ThemeCache {
	return &themeCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *themeCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:themes", sessionID)
}

func (c *themeCache) IncrementThemes(ctx context.Context, sessionID string, themes []string) error {
	if len(themes) == 0 {
		return nil
	}
	key := c.key(sessionID)
	pipe := c.client.Pipeline()
	for _, theme := range themes {
		pipe.HIncrBy(ctx, key, theme, 1)
	}
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *themeCache) GetThemeCounts(ctx context.Context, sessionID string) (map[string]int, error) {
	raw, err := c.client.HGetAll(ctx, c.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(raw))
	for theme, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		counts[theme] = n
	}
	return counts, nil
}
