// Package contract provides interfaces and shared utilities for the hubstats
// internal architecture.
package contract

import "github.com/Eysn0130/EconX-AI-Hub2/schema"

// KVStore defines the interface for the durable keyed blob storage.
// This allows mocking the store for testing.
type KVStore interface {
	// Get returns the stored bytes, schema version and write timestamp for a
	// key. Absent keys surface as sql.ErrNoRows.
	Get(key string) ([]byte, int, int64, error)

	// Set inserts or replaces the whole document stored under a key.
	Set(key string, value []byte, version int, timestamp int64) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the configured stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetStatsStore() KVStore
}
