// Package analysis implements the metric interpretation and scoring
// heuristics behind the health check.
package analysis

import (
	"github.com/bobmcallan/pulse/internal/models"
)

// ScaleTriple holds the (low, mid, high) thresholds for one metric in
// one sector. Only Mid and High participate in the PE/PS classification;
// Low is carried for completeness but the heuristic never branches on it.
type ScaleTriple struct {
	Low  float64
	Mid  float64
	High float64
}

// sectorScales holds per-sector thresholds for the three scaled metrics.
// Defined once at process start, never mutated.
var sectorScales = map[string]map[models.MetricKey]ScaleTriple{
	"Biotechnology": {
		models.MetricPE:           {0, 40, 80},
		models.MetricPS:           {0, 6, 12},
		models.MetricProfitMargin: {0.0, 0.05, 0.10},
	},
	"Healthcare": {
		models.MetricPE:           {0, 25, 45},
		models.MetricPS:           {0, 4, 8},
		models.MetricProfitMargin: {0.05, 0.10, 0.15},
	},
	"Industrial": {
		models.MetricPE:           {0, 15, 25},
		models.MetricPS:           {0, 2, 4},
		models.MetricProfitMargin: {0.05, 0.10, 0.15},
	},
	"Technology": {
		models.MetricPE:           {0, 30, 60},
		models.MetricPS:           {0, 5, 12},
		models.MetricProfitMargin: {0.05, 0.10, 0.20},
	},
	"Financial Services": {
		models.MetricPE:           {0, 12, 20},
		models.MetricPS:           {0, 3, 6},
		models.MetricProfitMargin: {0.05, 0.12, 0.18},
	},
}

// defaultScales applies when the sector is absent from sectorScales.
var defaultScales = map[models.MetricKey]ScaleTriple{
	models.MetricPE:           {0, 20, 40},
	models.MetricPS:           {0, 3, 6},
	models.MetricProfitMargin: {0.05, 0.10, 0.15},
}

// ScaleFor resolves the threshold triple for a metric in a sector,
// falling back to the default table for unrecognized sectors. The second
// return is false when the metric has no scale at all.
func ScaleFor(sector string, key models.MetricKey) (ScaleTriple, bool) {
	scales, ok := sectorScales[sector]
	if !ok {
		scales = defaultScales
	}
	triple, ok := scales[key]
	return triple, ok
}
