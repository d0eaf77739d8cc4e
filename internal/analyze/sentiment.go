package analyze

import (
	"math"

	"github.com/coinwatch/predictor/models"
)

// determineSentiment maps the directional call plus indicator bonuses
// onto the five sentiment categories.
func determineSentiment(direction string, basic models.BasicIndicators, enhanced *models.EnhancedIndicators) string {
	var score float64
	switch direction {
	case models.DirectionLong:
		score = (basic.Momentum + basic.Strength) / 2
	case models.DirectionShort:
		score = -(math.Abs(basic.Momentum) + (100 - basic.Strength)) / 2
	default:
		return models.SentimentNeutral
	}

	if enhanced != nil {
		switch enhanced.RSI.Signal {
		case models.SignalOversold:
			score += 10
		case models.SignalOverbought:
			score -= 10
		}
		switch enhanced.MACD.Crossover {
		case models.CrossoverBullish:
			score += 15
		case models.CrossoverBearish:
			score -= 15
		}
		switch enhanced.Bollinger.Signal {
		case models.SignalOversold:
			score += 8
		case models.SignalOverbought:
			score -= 8
		}
	}

	if direction == models.DirectionLong {
		switch {
		case score >= 60:
			return models.SentimentExtremeBullish
		case score >= 40:
			return models.SentimentBullish
		default:
			return models.SentimentNeutral
		}
	}
	switch {
	case score <= -60:
		return models.SentimentExtremeBearish
	case score <= -40:
		return models.SentimentBearish
	default:
		return models.SentimentNeutral
	}
}

// determineConfidence scores how much evidence backs the call. Bounded
// to [30,100] so even a bare-momentum prediction reports a floor value.
func determineConfidence(basic models.BasicIndicators, enhanced *models.EnhancedIndicators) int {
	confidence := 40 + math.Abs(basic.Momentum)*1.8

	switch basic.VolumeSignal {
	case models.VolumeHigh:
		confidence += 10
	case models.VolumeLow:
		confidence -= 5
	}

	if enhanced != nil {
		if enhanced.RSI.Signal != models.SignalNeutral {
			confidence += 10
		}
		if enhanced.MACD.Crossover != models.CrossoverNone {
			confidence += 15
		}
		if enhanced.Bollinger.Signal != models.SignalNeutral {
			confidence += 8
		}
	}

	return int(math.Round(clamp(confidence, 30, 100)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
