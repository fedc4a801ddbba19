package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/pulse/internal/models"
)

// allGoodSnapshot scores good on every component under any profile.
func allGoodSnapshot() *models.FinancialSnapshot {
	return &models.FinancialSnapshot{
		Ticker:        "GOOD",
		Sector:        "Technology",
		TrailingEPS:   models.Float64(5),
		TrailingPE:    models.Float64(18), // below Technology mid 30
		RevenueGrowth: models.Float64(0.25),
		ProfitMargin:  models.Float64(0.24),
		CurrentRatio:  models.Float64(1.5), // below default mid 20
	}
}

// allNeutralSnapshot scores neutral on every component: no valuation
// inputs at all, growth and margin inside [0, 0.10], current ratio
// between the default mid and high.
func allNeutralSnapshot() *models.FinancialSnapshot {
	return &models.FinancialSnapshot{
		Ticker:        "MID",
		Sector:        "Technology",
		RevenueGrowth: models.Float64(0.05),
		ProfitMargin:  models.Float64(0.05),
		CurrentRatio:  models.Float64(25),
	}
}

func TestScore_AllGoodIsTen(t *testing.T) {
	for _, profile := range []models.TradingProfile{models.ProfileBalanced, models.ProfileValue, models.ProfileSpeculative} {
		result := Score(allGoodSnapshot(), false, profile)
		assert.Equal(t, 10.0, result.Score, "profile=%s", profile)
		assert.Equal(t, models.VerdictBuy, result.Verdict)
		assert.Equal(t, "green", result.Color)
	}
}

func TestScore_AggressiveBonusClampsAtTen(t *testing.T) {
	result := Score(allGoodSnapshot(), true, models.ProfileBalanced)
	assert.Equal(t, 10.0, result.Score)
}

func TestScore_AggressiveBonus(t *testing.T) {
	base := Score(allNeutralSnapshot(), false, models.ProfileBalanced)
	assert.Equal(t, 6.0, base.Score)
	assert.Equal(t, models.VerdictWatch, base.Verdict)

	boosted := Score(allNeutralSnapshot(), true, models.ProfileBalanced)
	assert.Equal(t, 6.3, boosted.Score)
	assert.Equal(t, models.VerdictWatch, boosted.Verdict)
}

// The verdict reads the rounded score, not the raw one. Value profile
// with tiers neutral/good/neutral/neutral and the aggressive bonus gives
// a raw 6.9667, which rounds to 7.0 and therefore lands on BUY.
func TestScore_VerdictUsesRoundedScore(t *testing.T) {
	snap := &models.FinancialSnapshot{
		Ticker:        "EDGE",
		Sector:        "Technology",
		RevenueGrowth: models.Float64(0.25), // good
		ProfitMargin:  models.Float64(0.05), // neutral
		CurrentRatio:  models.Float64(25),   // neutral
	}

	result := Score(snap, true, models.ProfileValue)
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, models.VerdictBuy, result.Verdict)

	// Without the bonus the same snapshot stays below the line.
	base := Score(snap, false, models.ProfileValue)
	assert.Equal(t, 6.7, base.Score)
	assert.Equal(t, models.VerdictWatch, base.Verdict)
}

func TestScore_Idempotent(t *testing.T) {
	snap := allNeutralSnapshot()
	first := Score(snap, true, models.ProfileValue)
	second := Score(snap, true, models.ProfileValue)
	assert.Equal(t, first, second)
}

// Good valuation with everything else bad separates the three weight
// profiles: value leans hardest on valuation, speculative the least
// relative to growth.
func TestScore_ProfileWeights(t *testing.T) {
	snap := &models.FinancialSnapshot{
		Ticker:        "VAL",
		Sector:        "Technology",
		TrailingEPS:   models.Float64(3),
		TrailingPE:    models.Float64(18),
		RevenueGrowth: models.Float64(-0.05),
		ProfitMargin:  models.Float64(-0.02),
		CurrentRatio:  models.Float64(45),
	}

	tests := []struct {
		profile models.TradingProfile
		score   float64
		verdict string
	}{
		// value: (4*1.0 + 2*0.2 + 3*0.2 + 3*0.2) / 12 * 10 = 4.666... -> 4.7
		{models.ProfileValue, 4.7, models.VerdictWatch},
		// balanced: (3*1.0 + 3*0.2 + 2*0.2 + 2*0.2) / 10 * 10 = 4.4
		{models.ProfileBalanced, 4.4, models.VerdictAvoid},
		// speculative: (2*1.0 + 4*0.2 + 1*0.2 + 1*0.2) / 8 * 10 = 4.0
		{models.ProfileSpeculative, 4.0, models.VerdictAvoid},
	}

	for _, tt := range tests {
		result := Score(snap, false, tt.profile)
		assert.Equal(t, tt.score, result.Score, "profile=%s", tt.profile)
		assert.Equal(t, tt.verdict, result.Verdict, "profile=%s", tt.profile)
		assert.Equal(t, tt.profile, result.Profile)
	}
}

func TestScore_MissingMetricsCountAsBad(t *testing.T) {
	// Everything nil: growth, margins and balance are unknown (0.2),
	// valuation falls back to neutral (0.6).
	snap := models.EmptySnapshot("NIL")
	result := Score(snap, false, models.ProfileBalanced)
	// (3*0.6 + 3*0.2 + 2*0.2 + 2*0.2) / 10 * 10 = 3.2
	assert.Equal(t, 3.2, result.Score)
	assert.Equal(t, models.VerdictAvoid, result.Verdict)
}

func TestValuationTier_FallbackChain(t *testing.T) {
	// Positive EPS and a PE: PE wins even when P/S is present.
	withPE := &models.FinancialSnapshot{
		Sector:       "Technology",
		TrailingEPS:  models.Float64(2),
		TrailingPE:   models.Float64(65), // above Technology high 60
		PriceToSales: models.Float64(1),  // would be good, must be ignored
	}
	assert.Equal(t, models.TierBad, valuationTier(withPE))

	// Negative EPS: PE is unreliable, fall through to P/S.
	negEPS := &models.FinancialSnapshot{
		Sector:       "Technology",
		TrailingEPS:  models.Float64(-1),
		TrailingPE:   models.Float64(65),
		PriceToSales: models.Float64(1), // below Technology mid 5
	}
	assert.Equal(t, models.TierGood, valuationTier(negEPS))

	// No PE even with positive EPS: P/S.
	noPE := &models.FinancialSnapshot{
		Sector:       "Technology",
		TrailingEPS:  models.Float64(2),
		PriceToSales: models.Float64(13), // above Technology high 12
	}
	assert.Equal(t, models.TierBad, valuationTier(noPE))

	// Nothing usable: neutral.
	assert.Equal(t, models.TierNeutral, valuationTier(&models.FinancialSnapshot{Sector: "Technology"}))
}

func TestVerdictFor_Boundaries(t *testing.T) {
	tests := []struct {
		score   float64
		verdict string
		color   string
		label   string
	}{
		{10, models.VerdictBuy, "green", "Buy"},
		{7.0, models.VerdictBuy, "green", "Buy"},
		{6.9, models.VerdictWatch, "yellow", "Watch"},
		{4.5, models.VerdictWatch, "yellow", "Watch"},
		{4.4, models.VerdictAvoid, "red", "Avoid"},
		{0, models.VerdictAvoid, "red", "Avoid"},
	}

	for _, tt := range tests {
		verdict, color, label := verdictFor(tt.score)
		assert.Equal(t, tt.verdict, verdict, "score=%v", tt.score)
		assert.Equal(t, tt.color, color, "score=%v", tt.score)
		assert.Equal(t, tt.label, label, "score=%v", tt.score)
	}
}

func TestTierMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, tierMultiplier(models.TierGood))
	assert.Equal(t, 0.6, tierMultiplier(models.TierNeutral))
	assert.Equal(t, 0.2, tierMultiplier(models.TierBad))
	assert.Equal(t, 0.2, tierMultiplier(models.TierUnknown))
}
