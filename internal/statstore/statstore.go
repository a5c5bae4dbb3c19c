// Package statstore owns durable persistence of the portal usage statistics:
// the keyed blob store, the schema-aware repositories on top of it, and the
// change notification used by the reporting view.
package statstore

import (
	"sync"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
)

// StoreManagerImpl manages the configured KVStore instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	stats        contract.KVStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetStatsStore returns the stat KVStore.
func (mgr *StoreManagerImpl) GetStatsStore() contract.KVStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.stats
}
