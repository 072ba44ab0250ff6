package cache

import (
	"context"
	"time"
)

// Layered reads through a fast local store before falling back to a
// shared one. Writes and deletes go to both layers; a local miss that
// hits the shared layer backfills the local store.
type Layered struct {
	local  Store
	shared Store
}

// NewLayered composes a local and a shared store.
func NewLayered(local, shared Store) *Layered {
	return &Layered{local: local, shared: shared}
}

func (l *Layered) Get(ctx context.Context, key string) ([]byte, error) {
	if value, err := l.local.Get(ctx, key); err == nil {
		return value, nil
	}
	value, err := l.shared.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	_ = l.local.Set(ctx, key, value, time.Minute)
	return value, nil
}

func (l *Layered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = l.local.Set(ctx, key, value, ttl)
	return l.shared.Set(ctx, key, value, ttl)
}

func (l *Layered) Delete(ctx context.Context, keys ...string) error {
	_ = l.local.Delete(ctx, keys...)
	return l.shared.Delete(ctx, keys...)
}

func (l *Layered) Close() error {
	_ = l.local.Close()
	return l.shared.Close()
}
