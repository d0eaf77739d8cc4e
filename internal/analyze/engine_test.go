package analyze

import (
	"reflect"
	"testing"

	"github.com/coinwatch/predictor/models"
)

func bullishAsset() models.AssetSnapshot {
	return models.AssetSnapshot{
		ID:             "bitcoin",
		Name:           "Bitcoin",
		Symbol:         "btc",
		CurrentPrice:   100,
		High24h:        104,
		Low24h:         98,
		PriceChange24h: 8,
		PriceChange7d:  12,
		MarketCap:      1e12,
		MarketCapRank:  5,
		Volume24h:      5e10,
	}
}

func bullishBasic() models.BasicIndicators {
	return models.BasicIndicators{
		Trend24h:     models.TrendBullish,
		Trend7d:      models.TrendBullish,
		Momentum:     (8*2.5 + 12) / 3.5, // ~9.14
		VolumeSignal: models.VolumeNormal,
		Volatility:   4,
		Strength:     94,
	}
}

func TestEvaluateBasicOnlyBullishMomentumGoesLong(t *testing.T) {
	res := Evaluate(bullishAsset(), bullishBasic(), nil)

	if res.Direction != models.DirectionLong {
		t.Errorf("direction = %v, want LONG", res.Direction)
	}
	if res.Confidence < 30 || res.Confidence > 100 {
		t.Errorf("confidence %v outside [30,100]", res.Confidence)
	}
	if res.TargetPrice <= 100 {
		t.Errorf("LONG target %v must sit above entry", res.TargetPrice)
	}
	if res.StopLoss >= 100 {
		t.Errorf("LONG stop %v must sit below entry", res.StopLoss)
	}
}

func TestEvaluateOversoldRSIWithBullishCrossoverGoesLong(t *testing.T) {
	enhanced := &models.EnhancedIndicators{
		RSI: models.RSIResult{Value: 25, Signal: models.SignalOversold, Trend: models.TrendBullish},
		MACD: models.MACDResult{
			MACD: 1.2, Signal: 0.4, Histogram: 0.8,
			Trend: models.TrendBullish, Crossover: models.CrossoverBullish,
		},
		Bollinger: models.BollingerResult{Position: models.PositionMiddle, Signal: models.SignalNeutral},
	}

	res := Evaluate(bullishAsset(), bullishBasic(), enhanced)

	if res.Direction != models.DirectionLong {
		t.Errorf("direction = %v, want LONG", res.Direction)
	}
	// tech bonus: RSI extreme +10, crossover +15
	if res.Confidence < 65 {
		t.Errorf("confidence = %v, want >= 65 with strong technical confirmation", res.Confidence)
	}
}

func TestEvaluateBearishStackGoesShort(t *testing.T) {
	asset := bullishAsset()
	asset.PriceChange24h = -9
	asset.PriceChange7d = -14

	basic := models.BasicIndicators{
		Trend24h:     models.TrendBearish,
		Trend7d:      models.TrendBearish,
		Momentum:     -10.4,
		VolumeSignal: models.VolumeHigh,
		Strength:     30,
		Volatility:   5,
	}
	enhanced := &models.EnhancedIndicators{
		RSI: models.RSIResult{Value: 78, Signal: models.SignalOverbought, Trend: models.TrendBearish},
		MACD: models.MACDResult{
			MACD: -0.8, Signal: -0.2, Histogram: -0.6,
			Trend: models.TrendBearish, Crossover: models.CrossoverBearish,
		},
		Bollinger: models.BollingerResult{Position: models.PositionAboveUpper, Signal: models.SignalOverbought},
	}

	res := Evaluate(asset, basic, enhanced)

	if res.Direction != models.DirectionShort {
		t.Errorf("direction = %v, want SHORT", res.Direction)
	}
	if res.TargetPrice >= asset.CurrentPrice {
		t.Errorf("SHORT target %v must sit below entry", res.TargetPrice)
	}
	if res.StopLoss <= asset.CurrentPrice {
		t.Errorf("SHORT stop %v must sit above entry", res.StopLoss)
	}
	if res.Sentiment != models.SentimentBearish && res.Sentiment != models.SentimentExtremeBearish {
		t.Errorf("sentiment = %v, want bearish category", res.Sentiment)
	}
}

func TestEvaluateFlatMarketStaysNeutral(t *testing.T) {
	asset := bullishAsset()
	asset.PriceChange24h = 0.1
	asset.PriceChange7d = -0.3

	basic := models.BasicIndicators{
		Trend24h:     models.TrendNeutral,
		Trend7d:      models.TrendNeutral,
		Momentum:     -0.01,
		VolumeSignal: models.VolumeNormal,
		Volatility:   1,
		Strength:     50,
	}

	res := Evaluate(asset, basic, nil)

	if res.Direction != models.DirectionNeutral {
		t.Errorf("direction = %v, want NEUTRAL", res.Direction)
	}
	if res.Leverage != 1 {
		t.Errorf("leverage = %v, want forced 1 for NEUTRAL", res.Leverage)
	}
	if res.Sentiment != models.SentimentNeutral {
		t.Errorf("sentiment = %v, want NEUTRAL", res.Sentiment)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	enhanced := &models.EnhancedIndicators{
		RSI:  models.RSIResult{Value: 62, Signal: models.SignalNeutral, Trend: models.TrendBullish},
		MACD: models.MACDResult{MACD: 0.4, Signal: 0.1, Histogram: 0.3, Trend: models.TrendBullish, Crossover: models.CrossoverNone},
		Bollinger: models.BollingerResult{
			Upper: 110, Middle: 100, Lower: 90, Bandwidth: 20,
			Position: models.PositionNearUpper, Signal: models.SignalOverbought,
		},
		Supports:    []models.Level{{Price: 95, Type: models.LevelSupport, Strength: models.StrengthStrong, Touches: 4}},
		Resistances: []models.Level{{Price: 108, Type: models.LevelResistance, Strength: models.StrengthModerate, Touches: 2}},
	}

	first := Evaluate(bullishAsset(), bullishBasic(), enhanced)
	for i := 0; i < 5; i++ {
		if next := Evaluate(bullishAsset(), bullishBasic(), enhanced); !reflect.DeepEqual(first, next) {
			t.Fatalf("evaluation not deterministic: %+v vs %+v", first, next)
		}
	}
}

func TestEvaluateLeverageAlwaysWithinBounds(t *testing.T) {
	for _, volatility := range []float64{0.5, 1.9, 2.5, 4.2, 6.8, 8.5, 30} {
		basic := bullishBasic()
		basic.Volatility = volatility
		res := Evaluate(bullishAsset(), basic, nil)
		if res.Leverage < 1 || res.Leverage > 10 {
			t.Errorf("volatility %v: leverage %v outside [1,10]", volatility, res.Leverage)
		}
	}
}
