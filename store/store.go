// Package store wraps a string-keyed key-value store with a JSON codec.
// It is the only persistence boundary: every manager writes through it
// synchronously, and a malformed stored value is never an error for the
// caller — the key is treated as absent and the condition is logged.
package store

import (
	"context"
	"time"
)

// Store is a string-keyed JSON blob store.
type Store interface {
	// Get decodes the value at key into dest. It reports false when the
	// key is absent or its value cannot be decoded; decode failures are
	// logged and the corrupt value is dropped.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set encodes value and writes it at key.
	Set(ctx context.Context, key string, value interface{}) error
	// SetWithTTL is Set with an expiry, for short-lived records such as
	// deferred cart intents.
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// WithPrefix returns a view of s in which every key is namespaced with
// the given prefix. Each client's session, cart and bookings live under
// its own namespace.
func WithPrefix(s Store, prefix string) Store {
	return &prefixed{inner: s, prefix: prefix}
}

type prefixed struct {
	inner  Store
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return p.inner.Get(ctx, p.prefix+key, dest)
}

func (p *prefixed) Set(ctx context.Context, key string, value interface{}) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return p.inner.SetWithTTL(ctx, p.prefix+key, value, ttl)
}

func (p *prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
