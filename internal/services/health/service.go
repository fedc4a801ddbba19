// Package health provides the equity health-check service
package health

import (
	"context"
	"fmt"

	"github.com/bobmcallan/pulse/internal/analysis"
	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/models"
)

// Service implements HealthService
type Service struct {
	store  interfaces.SnapshotStore
	client interfaces.MarketDataClient
	logger *common.Logger
}

// NewService creates a new health service
func NewService(
	store interfaces.SnapshotStore,
	client interfaces.MarketDataClient,
	logger *common.Logger,
) *Service {
	return &Service{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Snapshot returns the snapshot for a ticker, from the cache when fresh,
// otherwise freshly fetched and cached.
func (s *Service) Snapshot(ctx context.Context, ticker string) (*models.FinancialSnapshot, error) {
	if cached, err := s.store.Get(ctx, ticker); err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Snapshot cache read failed")
	} else if cached != nil {
		s.logger.Debug().Str("ticker", ticker).Msg("Snapshot served from cache")
		return cached, nil
	}

	snapshot, err := s.client.GetSnapshot(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch failed for %s: %w", ticker, err)
	}

	if err := s.store.Put(ctx, snapshot); err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Snapshot cache write failed")
	}

	return snapshot, nil
}

// Check runs the full health check for a ticker. A total fetch failure
// propagates as an error (the "no data" state); partial data degrades to
// N/A readings and Unknown-tier multipliers instead.
func (s *Service) Check(ctx context.Context, ticker string, profile models.TradingProfile, aggressive bool) (*models.HealthCheck, error) {
	snapshot, err := s.Snapshot(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, fmt.Errorf("no data for ticker %s", ticker)
	}

	check := &models.HealthCheck{
		Ticker:   snapshot.Ticker,
		Name:     snapshot.Name,
		Sector:   snapshot.Sector,
		Price:    snapshot.Price,
		Score:    analysis.Score(snapshot, aggressive, profile),
		Analysis: buildAnalysis(snapshot),
		Calendar: snapshot.Calendar,
	}

	check.History = analysis.ComputeHistoryStats(snapshot.History)
	if advice := analysis.HistoryAdvice(check.History); advice != "" {
		check.Advice = append(check.Advice, advice)
	}

	return check, nil
}

// buildAnalysis assembles the per-metric readings shown alongside the
// score: valuation, growth, margins and balance-sheet lines.
func buildAnalysis(snapshot *models.FinancialSnapshot) models.AnalysisSections {
	sector := snapshot.Sector

	sections := models.AnalysisSections{
		Valuation: []models.MetricReading{
			{Label: "P/E", Interpretation: analysis.Interpret(snapshot.TrailingPE, models.MetricPE, sector)},
			{Label: "P/S", Interpretation: analysis.Interpret(snapshot.PriceToSales, models.MetricPS, sector)},
			{Label: "P/B", Interpretation: analysis.Interpret(snapshot.PriceToBook, models.MetricPB, sector)},
		},
		Growth: []models.MetricReading{
			{Label: "Revenue Growth", Interpretation: analysis.Interpret(snapshot.RevenueGrowth, models.MetricProfitMargin, "")},
		},
		Margins: []models.MetricReading{
			{Label: "Net Margin", Interpretation: analysis.Interpret(snapshot.ProfitMargin, models.MetricProfitMargin, "")},
			{Label: "Operating Margin", Interpretation: analysis.Interpret(snapshot.OperatingMargin, models.MetricProfitMargin, "")},
		},
		Balance: []models.MetricReading{
			{Label: "Current Ratio", Interpretation: analysis.Interpret(snapshot.CurrentRatio, models.MetricPE, "")},
			{Label: "Debt / Cash", Interpretation: interpretDebtToCash(snapshot.DebtToCash())},
		},
	}

	return sections
}

// interpretDebtToCash classifies the leverage ratio: under 1x is good,
// under 2x neutral, above that bad.
func interpretDebtToCash(ratio *float64) models.Interpretation {
	if ratio == nil {
		return models.Interpretation{
			Display:     "N/A",
			Tier:        models.TierUnknown,
			Color:       models.TierUnknown.Color(),
			Explanation: "data unavailable",
		}
	}

	var tier models.Tier
	var explanation string
	switch {
	case *ratio < 1:
		tier, explanation = models.TierGood, "more cash than debt"
	case *ratio < 2:
		tier, explanation = models.TierNeutral, "manageable leverage"
	default:
		tier, explanation = models.TierBad, "debt well above cash"
	}

	return models.Interpretation{
		Display:     fmt.Sprintf("%.2f", *ratio),
		Tier:        tier,
		Color:       tier.Color(),
		Explanation: explanation,
	}
}

// Ensure Service implements HealthService
var _ interfaces.HealthService = (*Service)(nil)
