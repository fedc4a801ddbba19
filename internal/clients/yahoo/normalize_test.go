package yahoo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_NilSummary(t *testing.T) {
	snapshot := normalize("XYZ", nil)
	require.NotNil(t, snapshot)
	assert.Equal(t, "XYZ", snapshot.Ticker)
	assert.Equal(t, "XYZ", snapshot.Name)
	assert.Equal(t, "Unknown", snapshot.Sector)
	assert.Nil(t, snapshot.Price)
	assert.Nil(t, snapshot.TrailingPE)
	assert.True(t, snapshot.IsEmpty())
}

func TestNormalize_ZeroIsNotMissing(t *testing.T) {
	payload := `{
		"financialData": {
			"profitMargins": {"raw": 0.0, "fmt": "0.00%"},
			"revenueGrowth": {}
		}
	}`
	var summary quoteSummaryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))

	snapshot := normalize("ZERO", &summary)

	// A reported zero survives as a real value.
	require.NotNil(t, snapshot.ProfitMargin)
	assert.Equal(t, 0.0, *snapshot.ProfitMargin)

	// An empty wrapper stays missing.
	assert.Nil(t, snapshot.RevenueGrowth)
}

func TestNormalize_FullPayload(t *testing.T) {
	payload := `{
		"price": {"longName": "Microsoft Corporation", "regularMarketPrice": {"raw": 430.1}},
		"summaryProfile": {"sector": "Technology"},
		"summaryDetail": {
			"trailingPE": {"raw": 36.2},
			"priceToSalesTrailing12Months": {"raw": 13.1},
			"marketCap": {"raw": 3.2e12}
		},
		"defaultKeyStatistics": {
			"priceToBook": {"raw": 12.4},
			"trailingEps": {"raw": 11.86},
			"bookValue": {"raw": 34.7},
			"sharesOutstanding": {"raw": 7.43e9}
		},
		"financialData": {
			"currentPrice": {"raw": 430.55},
			"profitMargins": {"raw": 0.355},
			"operatingMargins": {"raw": 0.447},
			"revenueGrowth": {"raw": 0.16},
			"totalCash": {"raw": 7.5e10},
			"totalDebt": {"raw": 9.7e10},
			"currentRatio": {"raw": 1.27}
		}
	}`
	var summary quoteSummaryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))

	snapshot := normalize("MSFT", &summary)

	assert.Equal(t, "Microsoft Corporation", snapshot.Name)
	assert.Equal(t, "Technology", snapshot.Sector)

	// currentPrice wins over regularMarketPrice.
	require.NotNil(t, snapshot.Price)
	assert.Equal(t, 430.55, *snapshot.Price)

	require.NotNil(t, snapshot.TrailingPE)
	assert.Equal(t, 36.2, *snapshot.TrailingPE)
	require.NotNil(t, snapshot.ProfitMargin)
	assert.Equal(t, 0.355, *snapshot.ProfitMargin)
	require.NotNil(t, snapshot.CurrentRatio)
	assert.Equal(t, 1.27, *snapshot.CurrentRatio)

	ratio := snapshot.DebtToCash()
	require.NotNil(t, ratio)
	assert.InDelta(t, 9.7/7.5, *ratio, 1e-9)

	assert.False(t, snapshot.IsEmpty())
}

func TestNormalize_PriceFallback(t *testing.T) {
	payload := `{"price": {"regularMarketPrice": {"raw": 99.5}}}`
	var summary quoteSummaryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))

	snapshot := normalize("FB", &summary)
	require.NotNil(t, snapshot.Price)
	assert.Equal(t, 99.5, *snapshot.Price)
}

func TestNormalizeCalendar(t *testing.T) {
	payload := `{
		"calendarEvents": {
			"earnings": {"earningsDate": [{"raw": 1761696000, "fmt": "2025-10-29"}, {"raw": 1762128000}]},
			"exDividendDate": {"raw": 1763596800},
			"dividendDate": {}
		}
	}`
	var summary quoteSummaryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &summary))

	calendar := normalizeCalendar(&summary)

	// The formatted value wins; only the first earnings date counts.
	assert.Equal(t, "2025-10-29", calendar["Earnings Date"])
	// No fmt: raw epoch seconds render as an ISO date.
	assert.Equal(t, "2025-11-20", calendar["Ex-Dividend Date"])
	// Empty wrapper drops the key entirely.
	_, ok := calendar["Dividend Date"]
	assert.False(t, ok)
}

func TestNormalizeCalendar_Empty(t *testing.T) {
	var summary quoteSummaryResult
	calendar := normalizeCalendar(&summary)
	assert.Empty(t, calendar)
}
