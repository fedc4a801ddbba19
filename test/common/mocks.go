// Package common provides shared test infrastructure
package common

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// MockMarketDataClient implements MarketDataClient for testing
type MockMarketDataClient struct {
	Snapshots        map[string]*models.FinancialSnapshot
	FailTickers      map[string]bool
	GetSnapshotCalls int
}

// NewMockMarketDataClient creates a mock market-data client
func NewMockMarketDataClient() *MockMarketDataClient {
	return &MockMarketDataClient{
		Snapshots:   make(map[string]*models.FinancialSnapshot),
		FailTickers: make(map[string]bool),
	}
}

func (m *MockMarketDataClient) GetSnapshot(_ context.Context, ticker string) (*models.FinancialSnapshot, error) {
	m.GetSnapshotCalls++
	if m.FailTickers[ticker] {
		return nil, fmt.Errorf("no data for ticker %s", ticker)
	}
	if snapshot, ok := m.Snapshots[ticker]; ok {
		return snapshot, nil
	}
	return SampleSnapshot(ticker), nil
}

// SampleSnapshot returns a healthy Technology snapshot with a year of
// synthetic history.
func SampleSnapshot(ticker string) *models.FinancialSnapshot {
	return &models.FinancialSnapshot{
		Ticker:            ticker,
		Name:              ticker + " Inc.",
		Sector:            "Technology",
		Price:             models.Float64(180.5),
		MarketCap:         models.Float64(2.8e12),
		TrailingPE:        models.Float64(25),
		PriceToSales:      models.Float64(4.5),
		PriceToBook:       models.Float64(12),
		ProfitMargin:      models.Float64(0.24),
		OperatingMargin:   models.Float64(0.30),
		RevenueGrowth:     models.Float64(0.12),
		TrailingEPS:       models.Float64(6.1),
		TotalCash:         models.Float64(6.2e10),
		TotalDebt:         models.Float64(9.5e10),
		CurrentRatio:      models.Float64(1.1),
		BookValue:         models.Float64(4.3),
		SharesOutstanding: models.Float64(1.55e10),
		History:           GenerateHistory(252, 150),
		Calendar:          map[string]string{"Earnings Date": "2026-10-29"},
		FetchedAt:         time.Now(),
	}
}

// GenerateHistory builds a deterministic oldest-first close series of n
// bars starting at base.
func GenerateHistory(n int, base float64) []models.PricePoint {
	points := make([]models.PricePoint, n)
	start := time.Now().AddDate(-1, 0, 0)
	price := base
	for i := 0; i < n; i++ {
		// small deterministic wobble
		if i%5 == 0 {
			price *= 0.995
		} else {
			price *= 1.003
		}
		points[i] = models.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Close: price,
		}
	}
	return points
}

// Ensure MockMarketDataClient implements MarketDataClient
var _ interfaces.MarketDataClient = (*MockMarketDataClient)(nil)
