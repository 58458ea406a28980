// Package cache provides the read-through cache for data that is read far
// more often than it is written, like the category tree of an owner.
//
// Values are stored as JSON. Without a Redis URL, an in-process cache is
// used.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DefaultTTL is the time entries are kept.
const DefaultTTL = 10 * time.Minute

// Cache stores JSON encoded values by key.
type Cache interface {
	// Get decodes the value for the key into target. It reports false if
	// there is no value.
	Get(ctx context.Context, key string, target any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// New returns a Redis backed cache for the URL, or an in-process cache if
// the URL is empty.
func New(ctx context.Context, redisURL string) (Cache, error) {
	if redisURL == "" {
		log.Debug().Msg("cache: using in-process cache")
		return NewMemory(), nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Debug().Str("addr", opt.Addr).Int("db", opt.DB).Msg("cache: using redis")
	return Redis{Client: client}, nil
}

// CategoriesKey is the key for the categories of an owner.
func CategoriesKey(owner uuid.UUID) string {
	return "ledger:categories:" + owner.String()
}

// Fetch returns the cached value for the key. On a miss, the value is
// loaded and stored. Cache failures are logged and the value is loaded.
func Fetch[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var value T

	ok, err := c.Get(ctx, key, &value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: get failed")
	}

	if ok && err == nil {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, DefaultTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: set failed")
	}

	return value, nil
}

// Invalidate deletes the keys. Failures are logged.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache: delete failed")
	}
}

// Redis is a cache stored in Redis.
type Redis struct {
	Client *redis.Client
}

func (r Redis) Get(ctx context.Context, key string, target any) (bool, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, json.Unmarshal(b, target)
}

func (r Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.Client.Set(ctx, key, b, ttl).Err()
}

func (r Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return r.Client.Del(ctx, keys...).Err()
}

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a cache in the memory of the process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, target any) (bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if m.now().After(e.expires) {
		m.mu.Lock()
		// Set may have replaced the entry in the meantime
		if current, ok := m.entries[key]; ok && m.now().After(current.expires) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return false, nil
	}

	return true, json.Unmarshal(e.value, target)
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: b, expires: m.now().Add(ttl)}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}
