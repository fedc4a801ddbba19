// Package storage provides SnapshotStore implementations
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// MemoryStore is the default in-process snapshot cache. Reads past the
// TTL behave as misses; stale entries are dropped lazily on access.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]*models.FinancialSnapshot
	ttl       time.Duration
}

// NewMemoryStore creates an in-memory snapshot store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = common.FreshnessSnapshot
	}
	return &MemoryStore{
		snapshots: make(map[string]*models.FinancialSnapshot),
		ttl:       ttl,
	}
}

// Get returns the cached snapshot for a ticker, or nil when absent or
// older than the TTL.
func (s *MemoryStore) Get(_ context.Context, ticker string) (*models.FinancialSnapshot, error) {
	s.mu.RLock()
	snapshot, ok := s.snapshots[ticker]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !common.IsFresh(snapshot.FetchedAt, s.ttl) {
		s.mu.Lock()
		delete(s.snapshots, ticker)
		s.mu.Unlock()
		return nil, nil
	}
	return snapshot, nil
}

// Put stores a snapshot keyed by its ticker.
func (s *MemoryStore) Put(_ context.Context, snapshot *models.FinancialSnapshot) error {
	s.mu.Lock()
	s.snapshots[snapshot.Ticker] = snapshot
	s.mu.Unlock()
	return nil
}

// Close releases the store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.snapshots = make(map[string]*models.FinancialSnapshot)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements SnapshotStore
var _ interfaces.SnapshotStore = (*MemoryStore)(nil)
