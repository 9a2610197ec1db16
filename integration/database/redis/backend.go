package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/minikit/core/storage"
)

// Compile-time check that Backend implements storage.Backend.
var _ storage.Backend = (*Backend)(nil)

// KV is the subset of the go-redis API the backend uses.
// *goredis.Client, *goredis.ClusterClient and goredis.UniversalClient satisfy it.
type KV interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Backend stores storage values as Redis strings.
type Backend struct {
	client KV
	prefix string
	ttl    time.Duration
}

// BackendOption configures Backend.
type BackendOption func(*Backend)

// WithKeyPrefix prepends prefix to every key.
func WithKeyPrefix(prefix string) BackendOption {
	return func(b *Backend) {
		b.prefix = prefix
	}
}

// WithTTL expires values after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) BackendOption {
	return func(b *Backend) {
		b.ttl = ttl
	}
}

// NewBackend wraps client as a storage.Backend.
func NewBackend(client KV, opts ...BackendOption) *Backend {
	b := &Backend{client: client}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get %q: %w", key, err)
	}
	return v, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, b.prefix+key, value, b.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %q: %w", key, err)
	}
	return nil
}

func (b *Backend) Remove(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, b.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis: del %q: %w", key, err)
	}
	return nil
}
