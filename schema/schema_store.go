package schema

import "time"

// StoreStatus reports status information about the durable stat store.
type StoreStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
