package forms

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"formbuilder/src/models"

	"github.com/redis/go-redis/v9"
)

// Cache holds saved forms by id. Forms never change after create, so entries are never invalidated.
type Cache interface {
	Get(ctx context.Context, id string) (*models.Form, bool, error)
	Set(ctx context.Context, form *models.Form) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return "form:" + id
}

func (c *RedisCache) Get(ctx context.Context, id string) (*models.Form, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var form models.Form
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, false, err
	}
	return &form, true, nil
}

func (c *RedisCache) Set(ctx context.Context, form *models.Form) error {
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(form.ID.Hex()), raw, c.ttl).Err()
}
