package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// SnapshotStore is the injectable TTL-bounded snapshot cache, keyed by
// ticker symbol. Get returns (nil, nil) on a miss or when the stored
// snapshot has outlived the store's TTL.
type SnapshotStore interface {
	Get(ctx context.Context, ticker string) (*models.FinancialSnapshot, error)
	Put(ctx context.Context, snapshot *models.FinancialSnapshot) error
	Close() error
}
