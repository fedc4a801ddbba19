// Package models defines data structures for Pulse
package models

import (
	"time"
)

// PricePoint is a single (date, close) observation in a price history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// FinancialSnapshot is the normalized financial record for one ticker at
// one fetch time. Metric fields are pointers: nil means the upstream
// provider did not supply the value. Zero is a legitimate value for
// several metrics (zero debt, zero growth) and is kept distinct from
// missing. Snapshots are immutable after construction; a new fetch
// produces a new snapshot.
type FinancialSnapshot struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`

	Price     *float64 `json:"price,omitempty"`
	MarketCap *float64 `json:"market_cap,omitempty"`

	// Valuation
	TrailingPE   *float64 `json:"trailing_pe,omitempty"`
	PriceToSales *float64 `json:"price_to_sales,omitempty"`
	PriceToBook  *float64 `json:"price_to_book,omitempty"`

	// Profitability (fractional, 0.12 = 12%)
	ProfitMargin    *float64 `json:"profit_margin,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`

	// Growth (fractional)
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`

	// Balance sheet
	TrailingEPS       *float64 `json:"trailing_eps,omitempty"`
	TotalCash         *float64 `json:"total_cash,omitempty"`
	TotalDebt         *float64 `json:"total_debt,omitempty"`
	CurrentRatio      *float64 `json:"current_ratio,omitempty"`
	BookValue         *float64 `json:"book_value,omitempty"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty"`

	// Side-cars, independently fetched and independently allowed to be
	// empty without failing the rest of the snapshot.
	History  []PricePoint      `json:"history,omitempty"`
	Calendar map[string]string `json:"calendar,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}

// EmptySnapshot returns the degraded snapshot used when the provider
// fetch fails entirely: sector "Unknown", every metric missing.
func EmptySnapshot(ticker string) *FinancialSnapshot {
	return &FinancialSnapshot{
		Ticker:    ticker,
		Name:      ticker,
		Sector:    "Unknown",
		Calendar:  map[string]string{},
		FetchedAt: time.Now(),
	}
}

// IsEmpty reports whether the snapshot carries no price, no metrics and
// no history — the "no data" blocking condition for a primary ticker.
func (s *FinancialSnapshot) IsEmpty() bool {
	return s.Price == nil &&
		s.TrailingPE == nil &&
		s.PriceToSales == nil &&
		s.PriceToBook == nil &&
		s.ProfitMargin == nil &&
		s.OperatingMargin == nil &&
		s.RevenueGrowth == nil &&
		s.TrailingEPS == nil &&
		s.TotalCash == nil &&
		s.TotalDebt == nil &&
		s.CurrentRatio == nil &&
		s.BookValue == nil &&
		s.SharesOutstanding == nil &&
		len(s.History) == 0
}

// DebtToCash returns total debt over total cash, or nil when either
// side is missing or cash is zero.
func (s *FinancialSnapshot) DebtToCash() *float64 {
	if s.TotalDebt == nil || s.TotalCash == nil || *s.TotalCash == 0 {
		return nil
	}
	ratio := *s.TotalDebt / *s.TotalCash
	return &ratio
}

// Float64 returns a pointer to v. Convenience for building snapshots.
func Float64(v float64) *float64 {
	return &v
}
