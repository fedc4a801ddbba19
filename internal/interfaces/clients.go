// Package interfaces defines service contracts for Pulse
package interfaces

import (
	"context"

	"github.com/bobmcallan/pulse/internal/models"
)

// MarketDataClient fetches and normalizes provider data for a ticker.
//
// Implementations must tolerate partial provider results: fundamentals,
// price history and calendar are independent, and the absence of any one
// of them must not fail the snapshot. An error is returned only when the
// provider yields nothing at all for the ticker (invalid symbol, network
// failure on every endpoint).
type MarketDataClient interface {
	GetSnapshot(ctx context.Context, ticker string) (*models.FinancialSnapshot, error)
}
