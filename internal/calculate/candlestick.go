package calculate

import (
	"math"

	"github.com/coinwatch/predictor/models"
)

// CandlestickPattern classifies the last four closing prices into a
// candle pattern heuristic. Rules are evaluated in priority order and
// the first match wins. With fewer than four samples it returns the
// no-pattern default.
func CandlestickPattern(prices []float64) models.CandlestickPatternResult {
	if len(prices) < 4 {
		return models.CandlestickPatternResult{
			Pattern:     models.PatternNone,
			Signal:      models.TrendNeutral,
			Confidence:  0,
			Description: "Not enough data for pattern detection",
		}
	}

	c := prices[len(prices)-4:]
	d1 := c[1] - c[0]
	d2 := c[2] - c[1]
	d3 := c[3] - c[2]

	switch {
	case math.Abs(d3)/c[2] < 0.001:
		return models.CandlestickPatternResult{
			Pattern:     models.PatternDoji,
			Signal:      models.TrendNeutral,
			Confidence:  60,
			Description: "Doji - market indecision, possible reversal ahead",
		}
	case d2 < 0 && d3 > 0 && math.Abs(d3) > 1.5*math.Abs(d2):
		return models.CandlestickPatternResult{
			Pattern:     models.PatternEngulfingBullish,
			Signal:      models.TrendBullish,
			Confidence:  75,
			Description: "Bullish engulfing - buyers overwhelmed the previous decline",
		}
	case d2 > 0 && d3 < 0 && math.Abs(d3) > 1.5*math.Abs(d2):
		return models.CandlestickPatternResult{
			Pattern:     models.PatternEngulfingBearish,
			Signal:      models.TrendBearish,
			Confidence:  75,
			Description: "Bearish engulfing - sellers overwhelmed the previous advance",
		}
	case d1 < 0 && math.Abs(d2) < 0.5*math.Abs(d1) && d3 > 0:
		return models.CandlestickPatternResult{
			Pattern:     models.PatternMorningStar,
			Signal:      models.TrendBullish,
			Confidence:  70,
			Description: "Morning star - selling pressure exhausted, bullish reversal",
		}
	case d1 > 0 && math.Abs(d2) < 0.5*math.Abs(d1) && d3 < 0:
		return models.CandlestickPatternResult{
			Pattern:     models.PatternEveningStar,
			Signal:      models.TrendBearish,
			Confidence:  70,
			Description: "Evening star - buying pressure exhausted, bearish reversal",
		}
	case d1 > 0.01*c[0] && d2 > 0.01*c[1] && d3 > 0.01*c[2]:
		return models.CandlestickPatternResult{
			Pattern:     models.PatternThreeWhiteSoldiers,
			Signal:      models.TrendBullish,
			Confidence:  80,
			Description: "Three white soldiers - strong sustained buying",
		}
	case d1 < -0.01*c[0] && d2 < -0.01*c[1] && d3 < -0.01*c[2]:
		return models.CandlestickPatternResult{
			Pattern:     models.PatternThreeBlackCrows,
			Signal:      models.TrendBearish,
			Confidence:  80,
			Description: "Three black crows - strong sustained selling",
		}
	}

	return models.CandlestickPatternResult{
		Pattern:     models.PatternNone,
		Signal:      models.TrendNeutral,
		Confidence:  0,
		Description: "No significant pattern detected",
	}
}
