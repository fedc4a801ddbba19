package analysis

import (
	"math"

	"github.com/bobmcallan/pulse/internal/models"
)

// Window sizes in trading days.
const (
	monthBars    = 22
	twoMonthBars = 44
	recentBars   = 10
)

// ComputeHistoryStats derives volatility and trend statistics from a
// trailing close history ordered oldest-first. Returns nil when fewer
// than two points are available.
func ComputeHistoryStats(history []models.PricePoint) *models.HistoryStats {
	if len(history) < 2 {
		return nil
	}

	closes := make([]float64, len(history))
	for i, p := range history {
		closes[i] = p.Close
	}

	changes := pctChanges(closes)

	stats := &models.HistoryStats{
		Volatility1Y:     stdDev(changes),
		Volatility1M:     stdDev(pctChanges(tail(closes, monthBars))),
		RecentVolatility: stdDev(tail(changes, recentBars)),
	}

	// One-month trend: mean of the last month vs the last two months.
	trend := mean(tail(closes, monthBars)) - mean(tail(closes, twoMonthBars))
	switch {
	case trend > 0:
		stats.Trend = "up"
	case trend < 0:
		stats.Trend = "down"
	default:
		stats.Trend = "flat"
	}

	switch {
	case stats.Volatility1Y > 0.05:
		stats.VolatilityNote = "high annual volatility, significant risk"
	case stats.Volatility1Y < 0.02:
		stats.VolatilityNote = "low volatility, stable asset"
	default:
		stats.VolatilityNote = "moderate volatility"
	}

	return stats
}

// HistoryAdvice returns the recent-volatility advisory line for the
// check response, or "" when there is no history.
func HistoryAdvice(stats *models.HistoryStats) string {
	if stats == nil {
		return ""
	}
	if stats.RecentVolatility > 0.03 {
		return "elevated recent volatility: caution"
	}
	return "moderate recent volatility"
}

// pctChanges computes day-over-day fractional changes.
func pctChanges(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	changes := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		changes = append(changes, (closes[i]-closes[i-1])/closes[i-1])
	}
	return changes
}

// tail returns the last n elements (the whole slice when shorter).
func tail(vals []float64, n int) []float64 {
	if len(vals) <= n {
		return vals
	}
	return vals[len(vals)-n:]
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stdDev is the sample standard deviation (n-1 denominator).
func stdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}
