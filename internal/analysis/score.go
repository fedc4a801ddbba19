package analysis

import (
	"math"

	"github.com/bobmcallan/pulse/internal/models"
)

// aggressiveBonus is the flat addition applied before clamping when
// aggressive mode is on.
const aggressiveBonus = 0.3

// weights holds the four component weights of a trading profile.
type weights struct {
	valuation float64
	growth    float64
	margins   float64
	balance   float64
}

func (w weights) total() float64 {
	return w.valuation + w.growth + w.margins + w.balance
}

// profileWeights returns the weight profile for a trading mode.
func profileWeights(profile models.TradingProfile) weights {
	switch profile {
	case models.ProfileValue:
		return weights{valuation: 4, growth: 2, margins: 3, balance: 3}
	case models.ProfileSpeculative:
		return weights{valuation: 2, growth: 4, margins: 1, balance: 1}
	default:
		return weights{valuation: 3, growth: 3, margins: 2, balance: 2}
	}
}

// tierMultiplier maps a tier to its score multiplier. Unknown counts
// the same as bad.
func tierMultiplier(t models.Tier) float64 {
	switch t {
	case models.TierGood:
		return 1.0
	case models.TierNeutral:
		return 0.6
	default:
		return 0.2
	}
}

// valuationTier picks the valuation signal: P/E when earnings are
// positive and a P/E exists, else P/S, else neutral.
func valuationTier(snap *models.FinancialSnapshot) models.Tier {
	switch {
	case snap.TrailingEPS != nil && *snap.TrailingEPS > 0 && snap.TrailingPE != nil:
		return Interpret(snap.TrailingPE, models.MetricPE, snap.Sector).Tier
	case snap.PriceToSales != nil:
		return Interpret(snap.PriceToSales, models.MetricPS, snap.Sector).Tier
	default:
		return models.TierNeutral
	}
}

// Score combines the four weighted sub-scores into a 0-10 score and a
// verdict. Growth and margins reuse the profit-margin absolute rule;
// the balance component runs the current ratio through the default PE
// scale. Both reuses are inherited from the original heuristic.
func Score(snap *models.FinancialSnapshot, aggressive bool, profile models.TradingProfile) models.ScoreResult {
	w := profileWeights(profile)

	raw := w.valuation * tierMultiplier(valuationTier(snap))
	raw += w.growth * tierMultiplier(Interpret(snap.RevenueGrowth, models.MetricProfitMargin, "").Tier)
	raw += w.margins * tierMultiplier(Interpret(snap.ProfitMargin, models.MetricProfitMargin, "").Tier)
	raw += w.balance * tierMultiplier(Interpret(snap.CurrentRatio, models.MetricPE, "").Tier)

	score := raw / w.total() * 10
	if aggressive {
		score += aggressiveBonus
	}
	score = math.Max(0, math.Min(10, score))
	score = math.Round(score*10) / 10

	verdict, color, label := verdictFor(score)

	return models.ScoreResult{
		Score:   score,
		Verdict: verdict,
		Color:   color,
		Label:   label,
		Profile: profile,
	}
}

// verdictFor maps a final score to the three-way verdict.
func verdictFor(score float64) (verdict, color, label string) {
	switch {
	case score >= 7:
		return models.VerdictBuy, "green", "Buy"
	case score >= 4.5:
		return models.VerdictWatch, "yellow", "Watch"
	default:
		return models.VerdictAvoid, "red", "Avoid"
	}
}
