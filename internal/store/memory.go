package store

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process Cache bounded to maxEntries.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		// re-check, a concurrent Set may have refreshed it
		if cur, ok := m.entries[key]; ok && !m.now().Before(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	m.trimLocked()
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// trimLocked drops expired entries first, then the ones closest to expiry,
// until the cache fits maxEntries.
func (m *MemoryCache) trimLocked() {
	if m.maxEntries <= 0 || len(m.entries) <= m.maxEntries {
		return
	}
	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	for len(m.entries) > m.maxEntries {
		var oldestKey string
		var oldest time.Time
		first := true
		for k, e := range m.entries {
			if first || e.expiresAt.Before(oldest) {
				oldestKey, oldest, first = k, e.expiresAt, false
			}
		}
		delete(m.entries, oldestKey)
	}
}
