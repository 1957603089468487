package driver

import (
	"sync"
	"time"
)

type memEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryKV process-local KeyValueDB, the default backend when no redis
// instance is configured. Expired entries are dropped lazily on access.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

var _ KeyValueDB = &MemoryKV{}

// NewMemoryKV create a MemoryKV instance
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		entries: make(map[string]memEntry),
	}
}

// SetEX implement KeyValueDB
func (kv *MemoryKV) SetEX(key string, value string, expiration time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	entry := memEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	kv.entries[key] = entry
	return nil
}

// Get implement KeyValueDB
func (kv *MemoryKV) Get(key string) (string, error) {
	kv.mu.RLock()
	entry, ok := kv.entries[key]
	kv.mu.RUnlock()

	if !ok || kv.expired(key, entry) {
		return "", nil
	}
	return entry.value, nil
}

// Exists implement KeyValueDB
func (kv *MemoryKV) Exists(key string) (bool, error) {
	kv.mu.RLock()
	entry, ok := kv.entries[key]
	kv.mu.RUnlock()

	if !ok {
		return false, nil
	}
	return !kv.expired(key, entry), nil
}

// Ping implement KeyValueDB
func (kv *MemoryKV) Ping() error {
	return nil
}

func (kv *MemoryKV) expired(key string, entry memEntry) bool {
	if entry.expiresAt.IsZero() || time.Now().Before(entry.expiresAt) {
		return false
	}
	kv.mu.Lock()
	delete(kv.entries, key)
	kv.mu.Unlock()
	return true
}
