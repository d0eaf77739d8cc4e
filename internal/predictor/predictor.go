package predictor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coinwatch/predictor/internal/analyze"
	"github.com/coinwatch/predictor/internal/calculate"
	"github.com/coinwatch/predictor/models"
)

// HistoryProvider supplies an asset's ordered price history. Any failure
// (or an empty result) makes the pipeline fall back to basic indicators
// only; it is never propagated.
type HistoryProvider interface {
	GetPriceHistory(ctx context.Context, assetID string, lookbackDays int) ([]models.PriceSample, error)
}

// VolumeHistoryProvider is an optional upgrade of HistoryProvider for
// sources that can pair historical prices with traded volume. When
// available it feeds the volume profile; when not, the profile is
// simply omitted.
type VolumeHistoryProvider interface {
	GetVolumeHistory(ctx context.Context, assetID string, lookbackDays int) ([]models.PriceVolume, error)
}

// Options tune the indicator parameters used by the assembler.
type Options struct {
	LookbackDays   int
	RSIPeriod      int
	MACDFast       int
	MACDSlow       int
	MACDSignal     int
	BBPeriod       int
	BBStdDev       float64
	LevelThreshold float64
	ProfileBuckets int
}

// DefaultOptions are the standard indicator parameters.
func DefaultOptions() Options {
	return Options{
		LookbackDays:   90,
		RSIPeriod:      14,
		MACDFast:       12,
		MACDSlow:       26,
		MACDSignal:     9,
		BBPeriod:       20,
		BBStdDev:       2.0,
		LevelThreshold: 0.02,
		ProfileBuckets: 20,
	}
}

// Predictor assembles predictions for assets, one at a time.
type Predictor struct {
	provider HistoryProvider
	opts     Options
	logger   zerolog.Logger
}

// New creates a Predictor backed by the given history provider. provider
// may be nil, in which case every prediction is basic-indicators only.
// Zero option fields fall back to DefaultOptions.
func New(provider HistoryProvider, opts Options) *Predictor {
	def := DefaultOptions()
	if opts.LookbackDays <= 0 {
		opts.LookbackDays = def.LookbackDays
	}
	if opts.RSIPeriod <= 0 {
		opts.RSIPeriod = def.RSIPeriod
	}
	if opts.MACDFast <= 0 {
		opts.MACDFast = def.MACDFast
	}
	if opts.MACDSlow <= 0 {
		opts.MACDSlow = def.MACDSlow
	}
	if opts.MACDSignal <= 0 {
		opts.MACDSignal = def.MACDSignal
	}
	if opts.BBPeriod <= 0 {
		opts.BBPeriod = def.BBPeriod
	}
	if opts.BBStdDev <= 0 {
		opts.BBStdDev = def.BBStdDev
	}
	if opts.LevelThreshold <= 0 {
		opts.LevelThreshold = def.LevelThreshold
	}
	if opts.ProfileBuckets <= 0 {
		opts.ProfileBuckets = def.ProfileBuckets
	}
	return &Predictor{
		provider: provider,
		opts:     opts,
		logger:   log.With().Str("component", "predictor").Logger(),
	}
}

// Predict evaluates a single asset: basic indicators always, enhanced
// indicators when price history is available, then the decision engine.
func (p *Predictor) Predict(ctx context.Context, asset models.AssetSnapshot) (*models.Prediction, error) {
	if asset.CurrentPrice <= 0 {
		return nil, fmt.Errorf("asset %s: invalid current price %f", asset.ID, asset.CurrentPrice)
	}

	basic := calculate.BasicIndicators(asset)
	enhanced := p.enhancedIndicators(ctx, asset.ID)

	res := analyze.Evaluate(asset, basic, enhanced)

	return &models.Prediction{
		ID:          uuid.NewString(),
		Asset:       asset,
		Direction:   res.Direction,
		Sentiment:   res.Sentiment,
		Confidence:  res.Confidence,
		Basic:       basic,
		Enhanced:    enhanced,
		Reasons:     res.Reasons,
		TargetPrice: res.TargetPrice,
		StopLoss:    res.StopLoss,
		Timeframe:   res.Timeframe,
		Analysis:    res.Analysis,
		Leverage:    res.Leverage,
		RiskLevel:   res.RiskLevel,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// PredictBatch evaluates assets sequentially. A failing asset is logged
// and skipped; it never aborts the rest of the batch.
func (p *Predictor) PredictBatch(ctx context.Context, assets []models.AssetSnapshot) []*models.Prediction {
	predictions := make([]*models.Prediction, 0, len(assets))
	for _, asset := range assets {
		prediction, err := p.Predict(ctx, asset)
		if err != nil {
			p.logger.Error().Err(err).Str("asset", asset.ID).Msg("skipping asset")
			continue
		}
		predictions = append(predictions, prediction)
	}
	return predictions
}

// enhancedIndicators fetches history and computes the price-series based
// indicators. Returns nil on any fetch failure or empty history.
func (p *Predictor) enhancedIndicators(ctx context.Context, assetID string) *models.EnhancedIndicators {
	if p.provider == nil {
		return nil
	}

	history, err := p.provider.GetPriceHistory(ctx, assetID, p.opts.LookbackDays)
	if err != nil {
		p.logger.Warn().Err(err).Str("asset", assetID).Msg("price history unavailable, using basic indicators only")
		return nil
	}
	if len(history) == 0 {
		p.logger.Warn().Str("asset", assetID).Msg("empty price history, using basic indicators only")
		return nil
	}

	closes := make([]float64, len(history))
	for i, s := range history {
		closes[i] = s.Price
	}

	supports, resistances := calculate.Levels(closes, p.opts.LevelThreshold)
	enhanced := &models.EnhancedIndicators{
		RSI:         calculate.RSI(closes, p.opts.RSIPeriod),
		MACD:        calculate.MACD(closes, p.opts.MACDFast, p.opts.MACDSlow, p.opts.MACDSignal),
		Bollinger:   calculate.Bollinger(closes, p.opts.BBPeriod, p.opts.BBStdDev),
		Supports:    supports,
		Resistances: resistances,
		Pattern:     calculate.CandlestickPattern(closes),
	}

	if vp, ok := p.provider.(VolumeHistoryProvider); ok {
		pairs, err := vp.GetVolumeHistory(ctx, assetID, p.opts.LookbackDays)
		if err != nil {
			p.logger.Warn().Err(err).Str("asset", assetID).Msg("volume history unavailable, omitting volume profile")
		} else {
			enhanced.VolumeProfile = calculate.VolumeProfile(pairs, p.opts.ProfileBuckets)
		}
	}
	return enhanced
}
