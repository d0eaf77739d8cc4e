package analyze

import (
	"fmt"
	"math"
	"strings"

	"github.com/coinwatch/predictor/models"
)

// buildReasons emits the ordered list of human-readable factors behind a
// prediction. Order is fixed by priority: RSI, MACD, Bollinger, support,
// resistance, 24h momentum, volume, volatility. Each entry is emitted
// only when its indicator actually says something.
func buildReasons(asset models.AssetSnapshot, basic models.BasicIndicators, enhanced *models.EnhancedIndicators) []models.Reason {
	var reasons []models.Reason

	if enhanced != nil {
		switch enhanced.RSI.Signal {
		case models.SignalOversold:
			reasons = append(reasons, models.Reason{
				Category: "RSI",
				Text:     fmt.Sprintf("RSI at %.1f signals oversold conditions, bounce potential", enhanced.RSI.Value),
				Impact:   models.ImpactPositive,
			})
		case models.SignalOverbought:
			reasons = append(reasons, models.Reason{
				Category: "RSI",
				Text:     fmt.Sprintf("RSI at %.1f signals overbought conditions, pullback risk", enhanced.RSI.Value),
				Impact:   models.ImpactNegative,
			})
		}

		switch enhanced.MACD.Crossover {
		case models.CrossoverBullish:
			reasons = append(reasons, models.Reason{
				Category: "MACD",
				Text:     "MACD bullish crossover, momentum turning up",
				Impact:   models.ImpactPositive,
			})
		case models.CrossoverBearish:
			reasons = append(reasons, models.Reason{
				Category: "MACD",
				Text:     "MACD bearish crossover, momentum turning down",
				Impact:   models.ImpactNegative,
			})
		default:
			if enhanced.MACD.Trend == models.TrendBullish {
				reasons = append(reasons, models.Reason{
					Category: "MACD",
					Text:     "MACD trending above its signal line",
					Impact:   models.ImpactPositive,
				})
			} else if enhanced.MACD.Trend == models.TrendBearish {
				reasons = append(reasons, models.Reason{
					Category: "MACD",
					Text:     "MACD trending below its signal line",
					Impact:   models.ImpactNegative,
				})
			}
		}

		switch enhanced.Bollinger.Signal {
		case models.SignalOversold:
			reasons = append(reasons, models.Reason{
				Category: "Bollinger",
				Text:     "Price pressing the lower Bollinger band",
				Impact:   models.ImpactPositive,
			})
		case models.SignalOverbought:
			reasons = append(reasons, models.Reason{
				Category: "Bollinger",
				Text:     "Price pressing the upper Bollinger band",
				Impact:   models.ImpactNegative,
			})
		}

		if l, ok := strongestLevel(enhanced.Supports); ok {
			reasons = append(reasons, models.Reason{
				Category: "Support",
				Text:     fmt.Sprintf("Strong support at $%s (%d touches)", formatPrice(l.Price), l.Touches),
				Impact:   models.ImpactPositive,
			})
		}
		if l, ok := strongestLevel(enhanced.Resistances); ok {
			reasons = append(reasons, models.Reason{
				Category: "Resistance",
				Text:     fmt.Sprintf("Strong resistance at $%s (%d touches)", formatPrice(l.Price), l.Touches),
				Impact:   models.ImpactNegative,
			})
		}
	}

	if math.Abs(asset.PriceChange24h) > 2 {
		impact := models.ImpactPositive
		if asset.PriceChange24h < 0 {
			impact = models.ImpactNegative
		}
		reasons = append(reasons, models.Reason{
			Category: "Momentum",
			Text:     fmt.Sprintf("24h price change of %+.1f%%", asset.PriceChange24h),
			Impact:   impact,
		})
	}

	if basic.VolumeSignal == models.VolumeHigh {
		impact := models.ImpactNeutral
		switch basic.Trend24h {
		case models.TrendBullish:
			impact = models.ImpactPositive
		case models.TrendBearish:
			impact = models.ImpactNegative
		}
		reasons = append(reasons, models.Reason{
			Category: "Volume",
			Text:     "High trading volume relative to market cap confirms the move",
			Impact:   impact,
		})
	}

	if basic.Volatility > 5 {
		reasons = append(reasons, models.Reason{
			Category: "Volatility",
			Text:     fmt.Sprintf("Elevated volatility (%.1f%% daily range), wider swings expected", basic.Volatility),
			Impact:   models.ImpactNeutral,
		})
	}

	return reasons
}

// buildAnalysis assembles the deterministic prose summary from the
// already-derived result.
func buildAnalysis(asset models.AssetSnapshot, res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) is rated %s with %d%% confidence over a %s horizon.",
		asset.Name, strings.ToUpper(asset.Symbol), res.Direction, res.Confidence, res.Timeframe)

	var positives, negatives int
	for _, r := range res.Reasons {
		switch r.Impact {
		case models.ImpactPositive:
			positives++
		case models.ImpactNegative:
			negatives++
		}
	}
	if len(res.Reasons) > 0 {
		fmt.Fprintf(&b, " %d of %d observed factors support the call.",
			supportingCount(res.Direction, positives, negatives), len(res.Reasons))
	}

	if res.Direction != models.DirectionNeutral {
		fmt.Fprintf(&b, " Target $%s, stop-loss $%s, suggested leverage %dx (%s risk).",
			formatPrice(res.TargetPrice), formatPrice(res.StopLoss), res.Leverage, strings.ToLower(res.RiskLevel))
	} else {
		b.WriteString(" No actionable edge; staying flat is preferred.")
	}

	return b.String()
}

func supportingCount(direction string, positives, negatives int) int {
	if direction == models.DirectionShort {
		return negatives
	}
	return positives
}

func strongestLevel(levels []models.Level) (models.Level, bool) {
	for _, l := range levels {
		if l.Strength == models.StrengthStrong {
			return l, true
		}
	}
	return models.Level{}, false
}

// formatPrice keeps sub-cent assets readable without scientific notation.
func formatPrice(p float64) string {
	switch {
	case p >= 1:
		return fmt.Sprintf("%.2f", p)
	case p >= 0.01:
		return fmt.Sprintf("%.4f", p)
	default:
		return fmt.Sprintf("%.8f", p)
	}
}
