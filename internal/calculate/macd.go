package calculate

import (
	"github.com/coinwatch/predictor/models"
)

// MACD calculates the Moving Average Convergence Divergence with the
// given fast/slow/signal periods. With fewer than slow samples it returns
// the all-zero neutral default.
func MACD(prices []float64, fast, slow, signal int) models.MACDResult {
	if len(prices) < slow {
		return models.MACDResult{
			Trend:     models.TrendNeutral,
			Crossover: models.CrossoverNone,
		}
	}

	macdLine := EMA(prices, fast) - EMA(prices, slow)

	// Signal line is the EMA of the MACD history. The history is rebuilt
	// by recomputing both EMAs on every prefix once the slow window is
	// filled; the series is capped upstream at ~90 samples so the
	// quadratic cost stays negligible.
	history := make([]float64, 0, len(prices)-slow+1)
	for i := slow - 1; i < len(prices); i++ {
		window := prices[:i+1]
		history = append(history, EMA(window, fast)-EMA(window, slow))
	}
	signalLine := EMA(history, signal)
	histogram := macdLine - signalLine

	trend := models.TrendNeutral
	switch {
	case macdLine > signalLine && histogram > 0:
		trend = models.TrendBullish
	case macdLine < signalLine && histogram < 0:
		trend = models.TrendBearish
	}

	crossover := models.CrossoverNone
	if len(history) >= 2 {
		prevMACD := history[len(history)-2]
		prevSignal := EMA(history[:len(history)-1], signal)
		switch {
		case prevMACD <= prevSignal && macdLine > signalLine:
			crossover = models.CrossoverBullish
		case prevMACD >= prevSignal && macdLine < signalLine:
			crossover = models.CrossoverBearish
		}
	}

	return models.MACDResult{
		MACD:      macdLine,
		Signal:    signalLine,
		Histogram: histogram,
		Trend:     trend,
		Crossover: crossover,
	}
}
