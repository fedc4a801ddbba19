package health

import (
	"context"
	"strings"

	"github.com/bobmcallan/pulse/internal/models"
)

// ParseTickers splits a comma-separated basket into trimmed symbols,
// discarding empties.
func ParseTickers(s string) []string {
	parts := strings.Split(s, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// Compare builds one comparison row per basket member, fetching
// sequentially in input order. A member whose fetch fails is omitted
// from the table; the rest of the basket proceeds unaffected. When
// filterToSector is set, rows outside referenceSector are dropped after
// fetching.
func (s *Service) Compare(ctx context.Context, tickers []string, referenceSector string, filterToSector bool) ([]models.CompareRow, error) {
	rows := make([]models.CompareRow, 0, len(tickers))

	for _, ticker := range tickers {
		snapshot, err := s.Snapshot(ctx, ticker)
		if err != nil {
			s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Skipping basket member")
			continue
		}

		rows = append(rows, models.CompareRow{
			Ticker: ticker,
			PE:     snapshot.TrailingPE,
			Sector: snapshot.Sector,
			Price:  snapshot.Price,
		})
	}

	if filterToSector {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Sector == referenceSector {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	return rows, nil
}
