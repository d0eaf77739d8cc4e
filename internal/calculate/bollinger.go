package calculate

import (
	"math"

	"github.com/coinwatch/predictor/models"
)

// Bollinger calculates Bollinger Bands over the given period with bands
// at stdDev standard deviations. With fewer than period samples it
// returns a degenerate band centered on the last price.
func Bollinger(prices []float64, period int, stdDev float64) models.BollingerResult {
	if len(prices) == 0 {
		return models.BollingerResult{
			Bandwidth: 10,
			Position:  models.PositionMiddle,
			Signal:    models.SignalNeutral,
		}
	}

	price := prices[len(prices)-1]
	if len(prices) < period {
		return models.BollingerResult{
			Upper:     price * 1.05,
			Middle:    price,
			Lower:     price * 0.95,
			Bandwidth: 10,
			Position:  models.PositionMiddle,
			Signal:    models.SignalNeutral,
		}
	}

	middle := SMA(prices, period)

	var variance float64
	for _, p := range prices[len(prices)-period:] {
		variance += math.Pow(p-middle, 2)
	}
	sd := math.Sqrt(variance / float64(period))

	upper := middle + stdDev*sd
	lower := middle - stdDev*sd

	bandwidth := 0.0
	if middle != 0 {
		bandwidth = (upper - lower) / middle * 100
	}

	// Inner thresholds sit at 80% of the distance from the middle band
	position := models.PositionMiddle
	switch {
	case price > upper:
		position = models.PositionAboveUpper
	case price > upper-0.2*(upper-middle):
		position = models.PositionNearUpper
	case price < lower:
		position = models.PositionBelowLower
	case price < lower+0.2*(middle-lower):
		position = models.PositionNearLower
	}

	signal := models.SignalNeutral
	switch position {
	case models.PositionAboveUpper, models.PositionNearUpper:
		signal = models.SignalOverbought
	case models.PositionBelowLower, models.PositionNearLower:
		signal = models.SignalOversold
	}

	return models.BollingerResult{
		Upper:     upper,
		Middle:    middle,
		Lower:     lower,
		Bandwidth: bandwidth,
		Position:  position,
		Signal:    signal,
	}
}
