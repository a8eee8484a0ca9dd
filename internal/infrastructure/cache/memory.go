package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// MemoryStore is a simple in-memory key-value store with expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	done  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store. Close stops its cleanup loop.
func NewMemoryStore(cleanupEvery time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		done:  make(chan struct{}),
	}

	go store.cleanupExpired(cleanupEvery)

	return store
}

// Set stores a key-value pair with expiration
func (ms *MemoryStore) Set(key string, value string, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem{
		value:      value,
		expireTime: time.Now().Add(expiration),
	}
}

// Get retrieves a value by key (returns empty string if not found or expired)
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists {
		return "", false
	}

	if time.Now().After(item.expireTime) {
		return "", false
	}

	return item.value, true
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// Len returns the number of stored items, expired ones included
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.items)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() {
	ms.once.Do(func() { close(ms.done) })
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ms.done:
			return
		case <-ticker.C:
			ms.removeExpired(time.Now())
		}
	}
}

func (ms *MemoryStore) removeExpired(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key, item := range ms.items {
		if now.After(item.expireTime) {
			delete(ms.items, key)
		}
	}
}

// MemorySummaryCache is the SummaryCache used when Redis is disabled
type MemorySummaryCache struct {
	store *MemoryStore
	ttl   time.Duration
}

// NewMemorySummaryCache creates a summary cache on top of a MemoryStore
func NewMemorySummaryCache(store *MemoryStore, ttl time.Duration) *MemorySummaryCache {
	return &MemorySummaryCache{store: store, ttl: ttl}
}

func (c *MemorySummaryCache) Get(_ context.Context, id uuid.UUID) (*entities.Summary, bool, error) {
	raw, ok := c.store.Get(summaryKey(id))
	if !ok {
		return nil, false, nil
	}
	s, err := decodeSummary(raw)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (c *MemorySummaryCache) Set(_ context.Context, summary *entities.Summary) error {
	raw, err := encodeSummary(summary)
	if err != nil {
		return err
	}
	c.store.Set(summaryKey(summary.ID), raw, c.ttl)
	return nil
}

func (c *MemorySummaryCache) Delete(_ context.Context, id uuid.UUID) error {
	c.store.Delete(summaryKey(id))
	return nil
}
