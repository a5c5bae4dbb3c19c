package statstore

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// memEntry is one stored document in the in-memory store.
type memEntry struct {
	value     []byte
	version   int
	timestamp int64
}

// MemStore is an in-memory KVStore used by tests and by callers that want
// session-only tracking without a database.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry

	// FailWrites makes every Set return an error, simulating quota or
	// disabled-storage faults.
	FailWrites bool
}

var _ contract.KVStore = &MemStore{} // Compile-time check

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]memEntry{}}
}

// NewMemManager returns a StoreManager backed by a fresh MemStore.
func NewMemManager() (*StoreManagerImpl, *MemStore) {
	store := NewMemStore()
	return &StoreManagerImpl{stats: store}, store
}

// Get retrieves a document by key. Absent keys surface as sql.ErrNoRows,
// matching the database-backed store.
func (ms *MemStore) Get(key string) ([]byte, int, int64, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	entry, ok := ms.entries[key]
	if !ok {
		return nil, 0, 0, sql.ErrNoRows
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, entry.version, entry.timestamp, nil
}

// Set stores a document under a key.
func (ms *MemStore) Set(key string, value []byte, version int, timestamp int64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.FailWrites {
		return fmt.Errorf("simulated write failure for key %q", key)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	ms.entries[key] = memEntry{value: stored, version: version, timestamp: timestamp}
	return nil
}

// Put seeds a raw document, bypassing FailWrites. Test helper.
func (ms *MemStore) Put(key, value string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[key] = memEntry{value: []byte(value), version: schema.StatSchemaVersion, timestamp: time.Now().Unix()}
}

// GetStatus returns status information about the in-memory store.
func (ms *MemStore) GetStatus() (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return schema.StoreStatus{
		Backend:      "memory",
		Connected:    true,
		TotalEntries: len(ms.entries),
	}, nil
}

// Close is a no-op for the in-memory store.
func (ms *MemStore) Close() error {
	return nil
}
