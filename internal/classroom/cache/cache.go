// Package cache keeps read-through copies of class views in Redis.
//
// Invalidation bumps a generation counter instead of deleting keys: every
// write to classes or students may change several cached views (a student
// rename shows up in each class it belongs to), and stale generations simply
// expire.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"marlin/internal/classroom/models"
	"marlin/pkg/platform/sentinel"
)

const (
	generationKey = "marlin:classes:gen"
	listSuffix    = "list"
)

// ClassCache is a Redis-backed cache of class views.
type ClassCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func New(client redis.UniversalClient, ttl time.Duration) *ClassCache {
	return &ClassCache{client: client, ttl: ttl}
}

// GetClass returns the cached class with members. A miss returns
// sentinel.ErrNotFound together with the generation to pass to SetClass, so a
// value loaded before a concurrent invalidation is never stored as current.
func (c *ClassCache) GetClass(ctx context.Context, registry string) (*models.Class, int64, error) {
	var out models.Class
	gen, err := c.get(ctx, registry, &out)
	if err != nil {
		return nil, gen, err
	}
	return &out, gen, nil
}

func (c *ClassCache) SetClass(ctx context.Context, gen int64, class *models.Class) error {
	return c.set(ctx, gen, class.Registry, class)
}

// GetList returns the cached class listing; misses behave as in GetClass.
func (c *ClassCache) GetList(ctx context.Context) ([]*models.Class, int64, error) {
	var out []*models.Class
	gen, err := c.get(ctx, listSuffix, &out)
	if err != nil {
		return nil, gen, err
	}
	return out, gen, nil
}

func (c *ClassCache) SetList(ctx context.Context, gen int64, classes []*models.Class) error {
	return c.set(ctx, gen, listSuffix, classes)
}

// Invalidate retires every cached view.
func (c *ClassCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("bump class cache generation: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (c *ClassCache) get(ctx context.Context, suffix string, dest any) (int64, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return 0, err
	}
	raw, err := c.client.Get(ctx, entryKey(gen, suffix)).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, sentinel.ErrNotFound
	}
	if err != nil {
		return gen, fmt.Errorf("read class cache: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return gen, fmt.Errorf("decode class cache entry: %w", err)
	}
	return gen, nil
}

func (c *ClassCache) set(ctx context.Context, gen int64, suffix string, v any) error {
	current, err := c.generation(ctx)
	if err != nil {
		return err
	}
	if current != gen {
		return nil
	}
	key := entryKey(gen, suffix)
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode class cache entry: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write class cache: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (c *ClassCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("read class cache generation: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return gen, nil
}

func entryKey(gen int64, suffix string) string {
	return fmt.Sprintf("marlin:classes:%d:%s", gen, suffix)
}
