// Package metricstore persists metric records and competitor selections.
package metricstore

import (
	"fmt"
	"sync"

	"github.com/brandscope/brandscope/internal/contract"
)

// StoreManagerImpl manages the metric store instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	metrics      contract.MetricsStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetMetricsStore returns the metric store.
func (mgr *StoreManagerImpl) GetMetricsStore() contract.MetricsStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.metrics
}

// InitStoreManager opens the configured backend and wraps it in a manager.
func InitStoreManager(cfg *contract.Config) (*StoreManagerImpl, error) {
	store, err := NewMetricsStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metric store: %w", err)
	}

	mgr := &StoreManagerImpl{}
	mgr.Lock()
	mgr.metrics = store
	mgr.Unlock()
	return mgr, nil
}
