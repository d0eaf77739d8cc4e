package calculate

import (
	"github.com/coinwatch/predictor/models"
)

// BasicIndicators derives coarse momentum/trend/volatility/strength
// metrics from an asset's 24h/7d summary statistics alone. It needs no
// price history, so it is always available.
func BasicIndicators(asset models.AssetSnapshot) models.BasicIndicators {
	momentum := clamp((asset.PriceChange24h*2.5+asset.PriceChange7d)/3.5, -100, 100)

	volatility := 0.0
	if asset.CurrentPrice > 0 {
		volatility = clamp((asset.High24h-asset.Low24h)/asset.CurrentPrice*100, 0, 100)
	}

	volumeSignal := models.VolumeNormal
	if asset.MarketCap > 0 {
		switch ratio := asset.Volume24h / asset.MarketCap; {
		case ratio > 0.15:
			volumeSignal = models.VolumeHigh
		case ratio < 0.05:
			volumeSignal = models.VolumeLow
		}
	}

	priceStrength := clamp(asset.PriceChange24h*3, -30, 30)
	trendStrength := clamp(asset.PriceChange7d*2, -20, 20)
	strength := clamp(50+priceStrength+trendStrength, 0, 100)

	return models.BasicIndicators{
		Trend24h:     trendLabel(asset.PriceChange24h, 0.5),
		Trend7d:      trendLabel(asset.PriceChange7d, 1),
		Momentum:     momentum,
		VolumeSignal: volumeSignal,
		Volatility:   volatility,
		Strength:     strength,
	}
}

func trendLabel(change, threshold float64) string {
	switch {
	case change > threshold:
		return models.TrendBullish
	case change < -threshold:
		return models.TrendBearish
	default:
		return models.TrendNeutral
	}
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
