package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"rinseo/utils"

	"go.uber.org/zap"
)

// MemoryStore is an in-process Store with the same contract as the
// Redis one. It backs tests and single-node demo deployments.
var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      string
	expiresAt time.Time // zero means no expiry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[key]
	if ok && !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(entry.data), dest); err != nil {
		utils.GetLogger().Warn("Discarding undecodable stored value",
			zap.String("key", key), zap.Error(err))
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

func (s *MemoryStore) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := memoryEntry{data: string(data)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// SeedRaw writes a raw string value at key, bypassing the JSON codec.
// Tests use it to plant corrupt records.
func (s *MemoryStore) SeedRaw(key, raw string) {
	s.mu.Lock()
	s.entries[key] = memoryEntry{data: raw}
	s.mu.Unlock()
}
