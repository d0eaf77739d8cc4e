package calculate

import (
	"testing"

	"github.com/coinwatch/predictor/models"
)

func generateSeries(n int, gen func(i int) float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = gen(i)
	}
	return prices
}

func TestRSIShortSeriesReturnsNeutralDefault(t *testing.T) {
	got := RSI([]float64{100, 101, 102}, 14)
	want := models.RSIResult{Value: 50, Signal: models.SignalNeutral, Trend: models.TrendNeutral}
	if got != want {
		t.Errorf("RSI(short) = %+v, want %+v", got, want)
	}
}

func TestRSIMonotonicIncreaseSaturatesNearHundred(t *testing.T) {
	prices := generateSeries(30, func(i int) float64 { return 100 + float64(i) })
	got := RSI(prices, 14)

	if got.Value < 99 {
		t.Errorf("RSI of strictly rising series = %v, want > 99", got.Value)
	}
	if got.Signal != models.SignalOverbought {
		t.Errorf("signal = %v, want overbought", got.Signal)
	}
	if got.Trend != models.TrendBullish {
		t.Errorf("trend = %v, want bullish", got.Trend)
	}
}

func TestRSIMonotonicDecreaseIsOversold(t *testing.T) {
	prices := generateSeries(30, func(i int) float64 { return 100 - float64(i) })
	got := RSI(prices, 14)

	if got.Value > 1 {
		t.Errorf("RSI of strictly falling series = %v, want near 0", got.Value)
	}
	if got.Signal != models.SignalOversold {
		t.Errorf("signal = %v, want oversold", got.Signal)
	}
	if got.Trend != models.TrendBearish {
		t.Errorf("trend = %v, want bearish", got.Trend)
	}
}

func TestRSIBoundsOnMixedSeries(t *testing.T) {
	prices := generateSeries(60, func(i int) float64 {
		return 100 + float64(i%7) - float64(i%3)*2
	})
	got := RSI(prices, 14)
	if got.Value < 0 || got.Value > 100 {
		t.Errorf("RSI = %v, want within [0,100]", got.Value)
	}
}
