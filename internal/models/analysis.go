package models

import "strings"

// Tier is the qualitative bucket assigned to a metric value.
type Tier string

const (
	TierGood    Tier = "good"
	TierNeutral Tier = "neutral"
	TierBad     Tier = "bad"
	TierUnknown Tier = "unknown"
)

// Color returns the display color associated with the tier.
func (t Tier) Color() string {
	switch t {
	case TierGood:
		return "green"
	case TierNeutral:
		return "yellow"
	case TierBad:
		return "red"
	default:
		return "gray"
	}
}

// MetricKey identifies a metric for interpretation against the sector
// scale table.
type MetricKey string

const (
	MetricPE           MetricKey = "PE"
	MetricPS           MetricKey = "P/S"
	MetricPB           MetricKey = "P/B"
	MetricProfitMargin MetricKey = "Profit Margin"
)

// Interpretation is the transient result of interpreting one metric.
type Interpretation struct {
	Display     string `json:"display"`
	Tier        Tier   `json:"tier"`
	Color       string `json:"color"`
	Explanation string `json:"explanation"`
}

// TradingProfile is a named weighting scheme controlling how much each
// sub-score contributes to the final score.
type TradingProfile string

const (
	ProfileBalanced    TradingProfile = "balanced"
	ProfileValue       TradingProfile = "value"
	ProfileSpeculative TradingProfile = "speculative"
)

// ParseTradingProfile maps a user-supplied profile name to a
// TradingProfile, defaulting to balanced.
func ParseTradingProfile(s string) TradingProfile {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value", "long-term", "longterm":
		return ProfileValue
	case "speculative", "short-term", "shortterm":
		return ProfileSpeculative
	default:
		return ProfileBalanced
	}
}

// Verdict tags
const (
	VerdictBuy   = "BUY"
	VerdictWatch = "WATCH"
	VerdictAvoid = "AVOID"
)

// ScoreResult is the outcome of one scoring invocation.
type ScoreResult struct {
	Score   float64        `json:"score"` // 0-10, one decimal place
	Verdict string         `json:"verdict"`
	Color   string         `json:"color"`
	Label   string         `json:"label"`
	Profile TradingProfile `json:"profile"`
}

// MetricReading pairs a display label with its interpretation, for the
// detailed analysis view.
type MetricReading struct {
	Label string `json:"label"`
	Interpretation
}

// HistoryStats summarizes the trailing price history.
type HistoryStats struct {
	Volatility1Y     float64 `json:"volatility_1y"` // stddev of daily pct changes
	Volatility1M     float64 `json:"volatility_1m"` // trailing 22 bars
	RecentVolatility float64 `json:"recent_volatility"`
	Trend            string  `json:"trend"` // "up", "down" or "flat"
	VolatilityNote   string  `json:"volatility_note"`
}

// AnalysisSections groups the per-metric readings by scoring component.
type AnalysisSections struct {
	Valuation []MetricReading `json:"valuation"`
	Growth    []MetricReading `json:"growth"`
	Margins   []MetricReading `json:"margins"`
	Balance   []MetricReading `json:"balance"`
}

// HealthCheck is the full single-ticker health-check response: score,
// verdict and per-metric interpretations.
type HealthCheck struct {
	Ticker   string            `json:"ticker"`
	Name     string            `json:"name"`
	Sector   string            `json:"sector"`
	Price    *float64          `json:"price,omitempty"`
	Score    ScoreResult       `json:"score"`
	Analysis AnalysisSections  `json:"analysis"`
	History  *HistoryStats     `json:"history,omitempty"`
	Advice   []string          `json:"advice,omitempty"`
	Calendar map[string]string `json:"calendar,omitempty"`
}

// CompareRow is one row of the multi-ticker comparison table.
type CompareRow struct {
	Ticker string   `json:"ticker"`
	PE     *float64 `json:"pe,omitempty"`
	Sector string   `json:"sector"`
	Price  *float64 `json:"price,omitempty"`
}
