package calculate

import (
	"math"
	"testing"

	"github.com/coinwatch/predictor/models"
)

func TestMACDShortSeriesReturnsZeroDefault(t *testing.T) {
	got := MACD([]float64{100, 101, 102}, 12, 26, 9)
	want := models.MACDResult{Trend: models.TrendNeutral, Crossover: models.CrossoverNone}
	if got != want {
		t.Errorf("MACD(short) = %+v, want %+v", got, want)
	}
}

func TestMACDRisingSeriesIsBullish(t *testing.T) {
	prices := generateSeries(60, func(i int) float64 { return 100 + float64(i)*2 })
	got := MACD(prices, 12, 26, 9)

	if got.MACD <= 0 {
		t.Errorf("MACD line = %v, want > 0 for rising series", got.MACD)
	}
	if got.Histogram <= 0 {
		t.Errorf("histogram = %v, want > 0 for rising series", got.Histogram)
	}
	if got.Trend != models.TrendBullish {
		t.Errorf("trend = %v, want bullish", got.Trend)
	}
}

func TestMACDFallingSeriesIsBearish(t *testing.T) {
	prices := generateSeries(60, func(i int) float64 { return 400 - float64(i)*2 })
	got := MACD(prices, 12, 26, 9)

	if got.MACD >= 0 {
		t.Errorf("MACD line = %v, want < 0 for falling series", got.MACD)
	}
	if got.Trend != models.TrendBearish {
		t.Errorf("trend = %v, want bearish", got.Trend)
	}
}

// The crossover flag must agree with the sign relation of the MACD and
// signal lines computed on the series with and without its last sample.
func TestMACDCrossoverConsistency(t *testing.T) {
	series := [][]float64{
		generateSeries(80, func(i int) float64 { return 100 + 20*math.Sin(float64(i)/5) }),
		generateSeries(70, func(i int) float64 { return 200 - float64(i) + 15*math.Cos(float64(i)/4) }),
		generateSeries(90, func(i int) float64 { return 50 + float64(i%13)*3 }),
	}

	for _, prices := range series {
		full := MACD(prices, 12, 26, 9)
		prev := MACD(prices[:len(prices)-1], 12, 26, 9)

		wasBelow := prev.MACD <= prev.Signal
		wasAbove := prev.MACD >= prev.Signal
		isAbove := full.MACD > full.Signal
		isBelow := full.MACD < full.Signal

		want := models.CrossoverNone
		switch {
		case wasBelow && isAbove:
			want = models.CrossoverBullish
		case wasAbove && isBelow:
			want = models.CrossoverBearish
		}
		if full.Crossover != want {
			t.Errorf("crossover = %v, want %v (prev macd=%v signal=%v, macd=%v signal=%v)",
				full.Crossover, want, prev.MACD, prev.Signal, full.MACD, full.Signal)
		}
	}
}

func TestMACDHistogramIsLineMinusSignal(t *testing.T) {
	prices := generateSeries(50, func(i int) float64 { return 100 + float64(i%9)*4 })
	got := MACD(prices, 12, 26, 9)
	if math.Abs(got.Histogram-(got.MACD-got.Signal)) > 1e-9 {
		t.Errorf("histogram = %v, want macd-signal = %v", got.Histogram, got.MACD-got.Signal)
	}
}
