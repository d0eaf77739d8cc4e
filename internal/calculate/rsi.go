package calculate

import (
	"github.com/coinwatch/predictor/models"
)

// RSI calculates the Relative Strength Index over the given period using
// Wilder smoothing. With fewer than period+1 samples it returns the
// neutral default (value 50) rather than an error.
func RSI(prices []float64, period int) models.RSIResult {
	if len(prices) < period+1 {
		return models.RSIResult{
			Value:  50,
			Signal: models.SignalNeutral,
			Trend:  models.TrendNeutral,
		}
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	// Wilder smoothing for the remaining deltas
	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain = (avgGain*float64(period-1) + change) / float64(period)
			avgLoss = (avgLoss * float64(period-1)) / float64(period)
		} else {
			avgGain = (avgGain * float64(period-1)) / float64(period)
			avgLoss = (avgLoss*float64(period-1) - change) / float64(period)
		}
	}

	// Saturate near 100 instead of dividing by zero
	rs := 100.0
	if avgLoss > 0 {
		rs = avgGain / avgLoss
	}
	value := 100.0 - (100.0 / (1.0 + rs))

	signal := models.SignalNeutral
	switch {
	case value > 70:
		signal = models.SignalOverbought
	case value < 30:
		signal = models.SignalOversold
	}

	lastChange := prices[len(prices)-1] - prices[len(prices)-2]
	trend := models.TrendNeutral
	switch {
	case value > 50 && lastChange > 0:
		trend = models.TrendBullish
	case value < 50 && lastChange < 0:
		trend = models.TrendBearish
	}

	return models.RSIResult{Value: value, Signal: signal, Trend: trend}
}
