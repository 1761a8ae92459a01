package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mycoordinator/domain"

	"github.com/go-redis/redis/v8"
)

// cache stores values of one type as plain keys under "<prefix>:<key>". Values never expire: rows are
// soft-deleted by the registry, not evicted by redis.
type cache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

func newCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *cache[T] {
	var zero T
	return &cache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (c *cache[T]) encode(item T) ([]byte, error) {
	bytes, err := c.marshal(item)
	if err != nil {
		return nil, fmt.Errorf("can't marshal item of type %T, err: %w", item, err)
	}
	return bytes, nil
}

// WriteValue stores item under key inside the given pipeliner, so several writes can share one MULTI block.
func (c *cache[T]) WriteValue(ctx context.Context, pipe redis.Pipeliner, key string, item T) error {
	bytes, err := c.encode(item)
	if err != nil {
		return err
	}
	return pipe.Set(ctx, c.generateKey(key), bytes, 0).Err()
}

// ReadValue returns the item stored under key or an error wrapping domain.ErrInstanceNotFound.
func (c *cache[T]) ReadValue(ctx context.Context, cmd redis.Cmdable, key string) (T, error) {
	bytes, err := cmd.Get(ctx, c.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return c.zero, fmt.Errorf("key '%s': %w", key, domain.ErrInstanceNotFound)
	}
	if err != nil {
		return c.zero, fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", c.zero, key, err)
	}
	item, err := c.unmarshal(bytes)
	if err != nil {
		return c.zero, fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", c.zero, key, err)
	}
	return item, nil
}

// DeleteValue removes key inside the given pipeliner.
func (c *cache[T]) DeleteValue(ctx context.Context, pipe redis.Pipeliner, key string) error {
	return pipe.Del(ctx, c.generateKey(key)).Err()
}

// ListAllValues lists all keys under the cache prefix then fetches their values. Keys that vanish between
// the two calls or hold garbage are skipped.
func (c *cache[T]) ListAllValues(ctx context.Context) ([]T, error) {
	fullKeys, err := c.client.Keys(ctx, c.prefix+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis get keys error, err: %w", err)
	}

	prefixWithColon := c.prefix + ":"
	items := make([]T, 0, len(fullKeys))
	for _, k := range fullKeys {
		if !strings.HasPrefix(k, prefixWithColon) {
			continue
		}
		item, err := c.ReadValue(ctx, c.client, strings.TrimPrefix(k, prefixWithColon))
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *cache[T]) generateKey(key string) string {
	return c.prefix + ":" + key
}
