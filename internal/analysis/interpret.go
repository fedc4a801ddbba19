package analysis

import (
	"fmt"
	"strconv"

	"github.com/bobmcallan/pulse/internal/models"
)

// Explanation strings attached to interpretations.
const (
	explainUnavailable  = "data unavailable"
	explainAttractive   = "attractive"
	explainSpeculative  = "high / speculative"
	explainInLine       = "in line with norms"
	explainSolidMargin  = "solid margin"
	explainNegMargin    = "loss / negative margin"
	explainModestMargin = "modest margin"
)

// Interpret classifies a raw metric value for a sector into a display
// string, a tier and an explanation. A nil value is the missing sentinel
// and short-circuits to N/A regardless of metric or sector.
//
// PE and P/S are cost metrics judged against the sector scale: below mid
// is good, above high is bad, anything else neutral. Both comparisons
// are strict, and the triple's low bound is never consulted — that
// asymmetry comes from the original heuristic and is kept as-is.
// Profit-margin-class metrics use absolute thresholds (>0.10 good,
// <0 bad) independent of the sector values.
func Interpret(value *float64, key models.MetricKey, sector string) models.Interpretation {
	if value == nil {
		return models.Interpretation{
			Display:     "N/A",
			Tier:        models.TierUnknown,
			Color:       models.TierUnknown.Color(),
			Explanation: explainUnavailable,
		}
	}

	v := *value

	triple, ok := ScaleFor(sector, key)
	if !ok {
		// Unscaled metric: raw string form, no judgement.
		return models.Interpretation{
			Display: strconv.FormatFloat(v, 'g', -1, 64),
			Tier:    models.TierUnknown,
			Color:   models.TierUnknown.Color(),
		}
	}

	var display string
	if key == models.MetricProfitMargin {
		display = fmt.Sprintf("%.1f%%", v*100)
	} else {
		display = fmt.Sprintf("%.2f", v)
	}

	var tier models.Tier
	var explanation string

	switch key {
	case models.MetricPE, models.MetricPS:
		switch {
		case v < triple.Mid:
			tier, explanation = models.TierGood, explainAttractive
		case v > triple.High:
			tier, explanation = models.TierBad, explainSpeculative
		default:
			tier, explanation = models.TierNeutral, explainInLine
		}
	case models.MetricProfitMargin:
		switch {
		case v > 0.10:
			tier, explanation = models.TierGood, explainSolidMargin
		case v < 0:
			tier, explanation = models.TierBad, explainNegMargin
		default:
			tier, explanation = models.TierNeutral, explainModestMargin
		}
	default:
		tier = models.TierUnknown
	}

	return models.Interpretation{
		Display:     display,
		Tier:        tier,
		Color:       tier.Color(),
		Explanation: explanation,
	}
}
