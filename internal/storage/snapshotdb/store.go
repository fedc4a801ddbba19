// Package snapshotdb implements SnapshotStore using BadgerHold, giving
// the snapshot cache a file-backed option that survives restarts.
package snapshotdb

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Store implements interfaces.SnapshotStore backed by BadgerHold.
type Store struct {
	db     *badgerhold.Store
	ttl    time.Duration
	logger *common.Logger
}

// NewStore opens (or creates) a snapshot store at path.
func NewStore(logger *common.Logger, path string, ttl time.Duration) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot db path %s: %w", path, err)
	}
	if ttl <= 0 {
		ttl = common.FreshnessSnapshot
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Dur("ttl", ttl).Msg("SnapshotDB opened")
	return &Store{db: db, ttl: ttl, logger: logger}, nil
}

// Get returns the stored snapshot for a ticker, or nil when absent or
// older than the TTL. Stale records are deleted on read.
func (s *Store) Get(_ context.Context, ticker string) (*models.FinancialSnapshot, error) {
	var snapshot models.FinancialSnapshot
	if err := s.db.Get(ticker, &snapshot); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot '%s': %w", ticker, err)
	}

	if !common.IsFresh(snapshot.FetchedAt, s.ttl) {
		_ = s.db.Delete(ticker, models.FinancialSnapshot{})
		return nil, nil
	}

	return &snapshot, nil
}

// Put upserts a snapshot keyed by its ticker.
func (s *Store) Put(_ context.Context, snapshot *models.FinancialSnapshot) error {
	if err := s.db.Upsert(snapshot.Ticker, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot '%s': %w", snapshot.Ticker, err)
	}
	s.logger.Debug().Str("ticker", snapshot.Ticker).Msg("Snapshot saved")
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements SnapshotStore
var _ interfaces.SnapshotStore = (*Store)(nil)
