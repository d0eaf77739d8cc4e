package analyze

import (
	"github.com/coinwatch/predictor/models"
)

// Result bundles everything the decision engine derives for one asset.
// The prediction assembler wraps it into the final models.Prediction.
type Result struct {
	Direction   string
	Sentiment   string
	Confidence  int
	Leverage    int
	RiskLevel   string
	TargetPrice float64
	StopLoss    float64
	Timeframe   string
	Reasons     []models.Reason
	Analysis    string
}

// Evaluate runs the full decision engine on one asset's indicators.
// enhanced may be nil when no price history was available; the engine
// then scores on basic indicators alone. The evaluation is deterministic
// and keeps no state between calls.
func Evaluate(asset models.AssetSnapshot, basic models.BasicIndicators, enhanced *models.EnhancedIndicators) Result {
	direction := determineDirection(basic, enhanced)
	confidence := determineConfidence(basic, enhanced)
	leverage := determineLeverage(direction, confidence, basic.Volatility)
	reasons := buildReasons(asset, basic, enhanced)

	res := Result{
		Direction:  direction,
		Sentiment:  determineSentiment(direction, basic, enhanced),
		Confidence: confidence,
		Leverage:   leverage,
		RiskLevel:  determineRiskLevel(basic, leverage),
		Timeframe:  determineTimeframe(asset, basic),
		Reasons:    reasons,
	}
	res.TargetPrice, res.StopLoss = determineTargets(asset, basic, enhanced, direction, leverage)
	res.Analysis = buildAnalysis(asset, res)
	return res
}

// determineDirection accumulates hand-tuned bullish/bearish points from
// every indicator and maps the score difference to a directional call.
func determineDirection(basic models.BasicIndicators, enhanced *models.EnhancedIndicators) string {
	var bullish, bearish float64

	// Momentum and trend agreement
	if basic.Momentum > 5 && basic.Trend24h == models.TrendBullish {
		bullish += 2
	}
	if basic.Momentum > 10 && basic.Trend7d == models.TrendBullish {
		bullish += 2
	}
	if basic.Momentum < -5 && basic.Trend24h == models.TrendBearish {
		bearish += 2
	}
	if basic.Momentum < -10 && basic.Trend7d == models.TrendBearish {
		bearish += 2
	}

	// Volume confirmation
	if basic.VolumeSignal == models.VolumeHigh {
		if basic.Strength > 55 {
			bullish++
		} else if basic.Strength < 45 {
			bearish++
		}
	}

	if enhanced != nil {
		rsi := enhanced.RSI
		switch rsi.Signal {
		case models.SignalOversold:
			if rsi.Trend == models.TrendBullish {
				bullish += 3
			} else {
				bullish += 2
			}
		case models.SignalOverbought:
			if rsi.Trend == models.TrendBearish {
				bearish += 3
			} else {
				bearish += 2
			}
		}
		if rsi.Value > 50 && rsi.Trend == models.TrendBullish {
			bullish++
		}
		if rsi.Value < 50 && rsi.Trend == models.TrendBearish {
			bearish++
		}

		switch enhanced.MACD.Crossover {
		case models.CrossoverBullish:
			bullish += 3
		case models.CrossoverBearish:
			bearish += 3
		}
		if enhanced.MACD.Trend == models.TrendBullish && enhanced.MACD.Histogram > 0 {
			bullish += 2
		}
		if enhanced.MACD.Trend == models.TrendBearish && enhanced.MACD.Histogram < 0 {
			bearish += 2
		}

		bb := enhanced.Bollinger
		if bb.Signal == models.SignalOversold || bb.Position == models.PositionBelowLower {
			bullish += 2
		}
		if bb.Signal == models.SignalOverbought || bb.Position == models.PositionAboveUpper {
			bearish += 2
		}
		// Squeeze: tight bands hint at an imminent move toward the
		// band being pressed
		if bb.Bandwidth < 5 {
			switch bb.Position {
			case models.PositionNearLower:
				bullish++
			case models.PositionNearUpper:
				bearish++
			}
		}

		if hasStrongLevel(enhanced.Supports) && basic.Trend24h == models.TrendBullish {
			bullish += 2
		}
		if hasStrongLevel(enhanced.Resistances) && basic.Trend24h == models.TrendBearish {
			bearish += 2
		}
	}

	switch diff := bullish - bearish; {
	case diff >= 3:
		return models.DirectionLong
	case diff <= -3:
		return models.DirectionShort
	}

	// Weak technical picture: fall back to raw momentum
	switch {
	case basic.Momentum > 2:
		return models.DirectionLong
	case basic.Momentum < -2:
		return models.DirectionShort
	default:
		return models.DirectionNeutral
	}
}

func hasStrongLevel(levels []models.Level) bool {
	for _, l := range levels {
		if l.Strength == models.StrengthStrong {
			return true
		}
	}
	return false
}
