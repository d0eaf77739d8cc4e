package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/coinwatch/predictor/models"
)

func samplePrediction() *models.Prediction {
	return &models.Prediction{
		ID: "test-id",
		Asset: models.AssetSnapshot{
			ID:           "bitcoin",
			Name:         "Bitcoin",
			Symbol:       "btc",
			CurrentPrice: 64250.12,
		},
		Direction:   models.DirectionLong,
		Sentiment:   models.SentimentBullish,
		Confidence:  72,
		TargetPrice: 67100.50,
		StopLoss:    63200.00,
		Timeframe:   "1-2d",
		Leverage:    3,
		RiskLevel:   models.RiskMedium,
		Reasons: []models.Reason{
			{Category: "RSI", Text: "RSI at 28.4 signals oversold conditions, bounce potential", Impact: models.ImpactPositive},
			{Category: "Volatility", Text: "Elevated volatility", Impact: models.ImpactNeutral},
		},
		CreatedAt: time.Now(),
	}
}

func TestFormatPrediction(t *testing.T) {
	text := FormatPrediction(samplePrediction())

	for _, want := range []string{"BTC", "LONG", "72%", "$64250.12", "$67100.50", "$63200.00", "3x", "Medium risk", "1-2d", "oversold"} {
		if !strings.Contains(text, want) {
			t.Errorf("formatted prediction missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Elevated volatility") {
		t.Error("neutral-impact reasons should be omitted from the digest")
	}
}

func TestFormatPredictionNeutralOmitsTradeLine(t *testing.T) {
	p := samplePrediction()
	p.Direction = models.DirectionNeutral

	text := FormatPrediction(p)
	if strings.Contains(text, "Target") {
		t.Errorf("neutral prediction should not render trade levels:\n%s", text)
	}
}

func TestFormatBatchConcatenatesAllPredictions(t *testing.T) {
	a := samplePrediction()
	b := samplePrediction()
	b.Asset.Symbol = "eth"
	b.Direction = models.DirectionShort

	text := FormatBatch([]*models.Prediction{a, b})
	if !strings.Contains(text, "BTC") || !strings.Contains(text, "ETH") {
		t.Errorf("batch digest missing assets:\n%s", text)
	}
}

func TestFormatSubCentPrices(t *testing.T) {
	p := samplePrediction()
	p.Asset.CurrentPrice = 0.00001234
	p.TargetPrice = 0.00001300
	p.StopLoss = 0.00001200

	text := FormatPrediction(p)
	if strings.Contains(text, "e-") {
		t.Errorf("prices must not use scientific notation:\n%s", text)
	}
	if !strings.Contains(text, "$0.00001234") {
		t.Errorf("sub-cent price not rendered with full precision:\n%s", text)
	}
}
