package yahoo

import (
	"time"

	"github.com/bobmcallan/pulse/internal/models"
)

// rawValue is Yahoo's {raw, fmt} numeric wrapper. Absent or non-numeric
// upstream values leave Raw nil, which normalization carries through as
// the missing sentinel — never as zero.
type rawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiErrorBody        `json:"error"`
	} `json:"quoteSummary"`
}

type apiErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	Price struct {
		LongName           string   `json:"longName"`
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
	} `json:"price"`
	SummaryProfile struct {
		Sector string `json:"sector"`
	} `json:"summaryProfile"`
	SummaryDetail struct {
		TrailingPE                   rawValue `json:"trailingPE"`
		PriceToSalesTrailing12Months rawValue `json:"priceToSalesTrailing12Months"`
		MarketCap                    rawValue `json:"marketCap"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics struct {
		PriceToBook       rawValue `json:"priceToBook"`
		TrailingEps       rawValue `json:"trailingEps"`
		BookValue         rawValue `json:"bookValue"`
		SharesOutstanding rawValue `json:"sharesOutstanding"`
	} `json:"defaultKeyStatistics"`
	FinancialData struct {
		CurrentPrice     rawValue `json:"currentPrice"`
		ProfitMargins    rawValue `json:"profitMargins"`
		OperatingMargins rawValue `json:"operatingMargins"`
		RevenueGrowth    rawValue `json:"revenueGrowth"`
		TotalCash        rawValue `json:"totalCash"`
		TotalDebt        rawValue `json:"totalDebt"`
		CurrentRatio     rawValue `json:"currentRatio"`
	} `json:"financialData"`
	CalendarEvents struct {
		Earnings struct {
			EarningsDate []rawValue `json:"earningsDate"`
		} `json:"earnings"`
		ExDividendDate rawValue `json:"exDividendDate"`
		DividendDate   rawValue `json:"dividendDate"`
	} `json:"calendarEvents"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiErrorBody `json:"error"`
	} `json:"chart"`
}

// normalize maps a provider payload onto the fixed snapshot shape. Every
// field is extracted independently; nil summary (fundamentals fetch
// failed) yields the degraded shape with sector "Unknown".
func normalize(ticker string, summary *quoteSummaryResult) *models.FinancialSnapshot {
	snapshot := models.EmptySnapshot(ticker)
	if summary == nil {
		return snapshot
	}

	if summary.Price.LongName != "" {
		snapshot.Name = summary.Price.LongName
	}
	if summary.SummaryProfile.Sector != "" {
		snapshot.Sector = summary.SummaryProfile.Sector
	}

	snapshot.Price = summary.FinancialData.CurrentPrice.Raw
	if snapshot.Price == nil {
		snapshot.Price = summary.Price.RegularMarketPrice.Raw
	}

	snapshot.MarketCap = summary.SummaryDetail.MarketCap.Raw
	snapshot.TrailingPE = summary.SummaryDetail.TrailingPE.Raw
	snapshot.PriceToSales = summary.SummaryDetail.PriceToSalesTrailing12Months.Raw
	snapshot.PriceToBook = summary.DefaultKeyStatistics.PriceToBook.Raw
	snapshot.ProfitMargin = summary.FinancialData.ProfitMargins.Raw
	snapshot.OperatingMargin = summary.FinancialData.OperatingMargins.Raw
	snapshot.RevenueGrowth = summary.FinancialData.RevenueGrowth.Raw
	snapshot.TrailingEPS = summary.DefaultKeyStatistics.TrailingEps.Raw
	snapshot.TotalCash = summary.FinancialData.TotalCash.Raw
	snapshot.TotalDebt = summary.FinancialData.TotalDebt.Raw
	snapshot.CurrentRatio = summary.FinancialData.CurrentRatio.Raw
	snapshot.BookValue = summary.DefaultKeyStatistics.BookValue.Raw
	snapshot.SharesOutstanding = summary.DefaultKeyStatistics.SharesOutstanding.Raw

	snapshot.Calendar = normalizeCalendar(summary)

	return snapshot
}

// normalizeCalendar flattens the events record into name -> date strings.
// An empty or absent calendar is fine.
func normalizeCalendar(summary *quoteSummaryResult) map[string]string {
	calendar := map[string]string{}

	if dates := summary.CalendarEvents.Earnings.EarningsDate; len(dates) > 0 {
		if v := calendarDate(dates[0]); v != "" {
			calendar["Earnings Date"] = v
		}
	}
	if v := calendarDate(summary.CalendarEvents.ExDividendDate); v != "" {
		calendar["Ex-Dividend Date"] = v
	}
	if v := calendarDate(summary.CalendarEvents.DividendDate); v != "" {
		calendar["Dividend Date"] = v
	}

	return calendar
}

// calendarDate renders an event value, preferring the provider's own
// formatted form over the raw epoch seconds.
func calendarDate(v rawValue) string {
	if v.Fmt != "" {
		return v.Fmt
	}
	if v.Raw != nil {
		return time.Unix(int64(*v.Raw), 0).UTC().Format("2006-01-02")
	}
	return ""
}
