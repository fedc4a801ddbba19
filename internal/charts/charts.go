// Package charts renders PNG charts for the health-check views
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/pulse/internal/models"
)

// RenderHistoryChart renders the one-year close history for a snapshot
// as a PNG line chart. Returns raw PNG bytes.
func RenderHistoryChart(snapshot *models.FinancialSnapshot) ([]byte, error) {
	if len(snapshot.History) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(snapshot.History))
	}

	xValues := make([]time.Time, len(snapshot.History))
	yValues := make([]float64, len(snapshot.History))
	for i, p := range snapshot.History {
		xValues[i] = p.Date
		yValues[i] = p.Close
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s — 1 Year", snapshot.Ticker),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{closeSeries},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderCompareChart renders the comparative P/E bar chart across a
// basket. Rows without a P/E are skipped.
func RenderCompareChart(rows []models.CompareRow) ([]byte, error) {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		if row.PE == nil {
			continue
		}
		bars = append(bars, chart.Value{
			Label: row.Ticker,
			Value: *row.PE,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"),
				StrokeColor: drawing.ColorFromHex("1e40af"),
			},
		})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("no P/E data to chart")
	}

	graph := chart.BarChart{
		Title:  "Comparative P/E",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
