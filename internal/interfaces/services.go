package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// HealthService is the health-check core: cached snapshots, single-ticker
// checks and multi-ticker comparison.
type HealthService interface {
	// Snapshot returns the snapshot for a ticker, served from the cache
	// when fresh. The error is non-nil only when the provider produced
	// nothing for the ticker.
	Snapshot(ctx context.Context, ticker string) (*models.FinancialSnapshot, error)

	// Check runs the full health check: interpretations, score, verdict,
	// history statistics and advice.
	Check(ctx context.Context, ticker string, profile models.TradingProfile, aggressive bool) (*models.HealthCheck, error)

	// Compare builds the comparison table across a basket of tickers.
	// Tickers that fail to fetch are omitted; when filterToSector is set,
	// rows outside referenceSector are dropped post-hoc.
	Compare(ctx context.Context, tickers []string, referenceSector string, filterToSector bool) ([]models.CompareRow, error)
}
