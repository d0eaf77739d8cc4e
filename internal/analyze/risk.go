package analyze

import (
	"math"

	"github.com/coinwatch/predictor/models"
)

// determineLeverage recommends a leverage multiplier from confidence and
// volatility, with tighter caps the more volatile the asset. NEUTRAL
// calls always get leverage 1.
func determineLeverage(direction string, confidence int, volatility float64) int {
	if direction == models.DirectionNeutral {
		return 1
	}

	raw := float64(confidence) / 100 * math.Max(0.3, 1-volatility/100) * 10

	var lo, hi float64
	switch {
	case volatility > 8:
		lo, hi = 1, 2
	case volatility > 6:
		lo, hi = 1, 3
	case volatility > 4:
		lo, hi = 2, 5
	case volatility > 2:
		lo, hi = 3, 7
	default:
		lo, hi = 3, 10
	}

	return int(math.Round(clamp(raw, lo, hi)))
}

// determineRiskLevel grades the trade by volatility, leverage and how
// weak the underlying strength reading is.
func determineRiskLevel(basic models.BasicIndicators, leverage int) string {
	score := basic.Volatility*8 + float64(leverage)*3 + (100-basic.Strength)*0.2
	switch {
	case score > 70:
		return models.RiskExtreme
	case score > 45:
		return models.RiskHigh
	case score > 25:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// determineTimeframe picks the holding-period label. Faster markets get
// shorter windows; large caps default to swing horizons.
func determineTimeframe(asset models.AssetSnapshot, basic models.BasicIndicators) string {
	absMomentum := math.Abs(basic.Momentum)
	switch {
	case basic.Volatility > 8 && absMomentum > 15:
		return "4-8h"
	case basic.Volatility > 6:
		return "8-24h"
	case absMomentum > 20 && basic.Volatility > 3:
		return "1-2d"
	case basic.Volatility < 2 && absMomentum < 10:
		return "2-5d"
	case asset.MarketCapRank > 0 && asset.MarketCapRank <= 10:
		return "1-2d"
	default:
		return "12-36h"
	}
}
