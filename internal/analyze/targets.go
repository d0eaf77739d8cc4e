package analyze

import (
	"github.com/coinwatch/predictor/models"
)

// targetTier holds the base target/stop percentages for a market-cap
// rank band. Large caps move less, so their targets are tighter.
type targetTier struct {
	maxRank   int
	targetPct float64
	stopPct   float64
}

// Beyond rank 100 (or unranked) the fallback is 16% target, 4.5% stop.
var targetTiers = []targetTier{
	{10, 4.5, 1.5},
	{30, 7, 2.5},
	{50, 9.5, 3},
	{100, 12.5, 3.5},
}

// determineTargets derives the target price and stop-loss. Percentage
// tiers by market-cap rank give the baseline; a nearby detected
// support/resistance level overrides it when the level sits within a
// sane multiple of the baseline distance.
func determineTargets(asset models.AssetSnapshot, basic models.BasicIndicators, enhanced *models.EnhancedIndicators, direction string, leverage int) (target, stop float64) {
	price := asset.CurrentPrice

	targetPct, stopPct := 16.0, 4.5
	for _, tier := range targetTiers {
		if asset.MarketCapRank > 0 && asset.MarketCapRank <= tier.maxRank {
			targetPct, stopPct = tier.targetPct, tier.stopPct
			break
		}
	}

	// Scale the target with volatility, tighten the stop under leverage
	targetPct *= clamp(basic.Volatility/3, 0.7, 1.8)
	switch {
	case leverage >= 5:
		stopPct *= 0.6
	case leverage >= 3:
		stopPct *= 0.8
	}

	if direction == models.DirectionShort {
		target = price * (1 - targetPct/100)
		stop = price * (1 + stopPct/100)
		if enhanced != nil {
			if p, ok := nearestLevel(enhanced.Supports, price, targetPct*1.5, false); ok {
				target = p
			}
			if p, ok := nearestLevel(enhanced.Resistances, price, stopPct*2, true); ok {
				stop = p
			}
		}
		return target, stop
	}

	// LONG and NEUTRAL use the long-side orientation
	target = price * (1 + targetPct/100)
	stop = price * (1 - stopPct/100)
	if direction == models.DirectionLong && enhanced != nil {
		if p, ok := nearestLevel(enhanced.Resistances, price, targetPct*1.5, true); ok {
			target = p
		}
		if p, ok := nearestLevel(enhanced.Supports, price, stopPct*2, false); ok {
			stop = p
		}
	}
	return target, stop
}

// nearestLevel returns the first level whose distance from price falls
// inside (minMovePct, maxPct]. Levels arrive sorted nearest-first, so
// the first qualifying one is the nearest.
func nearestLevel(levels []models.Level, price, maxPct float64, above bool) (float64, bool) {
	const minMovePct = 0.5
	for _, l := range levels {
		var distPct float64
		if above {
			distPct = (l.Price - price) / price * 100
		} else {
			distPct = (price - l.Price) / price * 100
		}
		if distPct > minMovePct && distPct <= maxPct {
			return l.Price, true
		}
	}
	return 0, false
}
