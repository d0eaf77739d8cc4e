package models

import (
	"time"
)

// Trade direction emitted by the decision engine.
const (
	DirectionLong    = "LONG"
	DirectionShort   = "SHORT"
	DirectionNeutral = "NEUTRAL"
)

// Sentiment categories, ordered from most bullish to most bearish.
const (
	SentimentExtremeBullish = "EXTREME_BULLISH"
	SentimentBullish        = "BULLISH"
	SentimentNeutral        = "NEUTRAL"
	SentimentBearish        = "BEARISH"
	SentimentExtremeBearish = "EXTREME_BEARISH"
)

// Trend labels shared by basic and enhanced indicators.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Oscillator signal labels (RSI, Bollinger).
const (
	SignalOverbought = "overbought"
	SignalOversold   = "oversold"
	SignalNeutral    = "neutral"
)

// Volume signal labels.
const (
	VolumeHigh   = "high"
	VolumeNormal = "normal"
	VolumeLow    = "low"
)

// MACD crossover states.
const (
	CrossoverBullish = "bullish_crossover"
	CrossoverBearish = "bearish_crossover"
	CrossoverNone    = "none"
)

// Bollinger band position labels.
const (
	PositionAboveUpper = "above_upper"
	PositionNearUpper  = "near_upper"
	PositionMiddle     = "middle"
	PositionNearLower  = "near_lower"
	PositionBelowLower = "below_lower"
)

// Price level types and strengths.
const (
	LevelSupport    = "support"
	LevelResistance = "resistance"

	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// Candlestick pattern names.
const (
	PatternDoji               = "doji"
	PatternEngulfingBullish   = "engulfing_bullish"
	PatternEngulfingBearish   = "engulfing_bearish"
	PatternMorningStar        = "morning_star"
	PatternEveningStar        = "evening_star"
	PatternThreeWhiteSoldiers = "three_white_soldiers"
	PatternThreeBlackCrows    = "three_black_crows"
	PatternNone               = "none"
)

// Reason impact tags.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// Risk levels.
const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskExtreme = "Extreme"
)

// Prediction outcome lifecycle states used by the history store.
const (
	OutcomeOpen       = "open"
	OutcomeTargetHit  = "target_hit"
	OutcomeStoppedOut = "stopped_out"
	OutcomeExpired    = "expired"
)

// PriceSample is a single point of an asset's price history.
type PriceSample struct {
	Timestamp int64   `json:"timestamp"` // unix millis
	Price     float64 `json:"price"`
}

// PriceVolume pairs a traded price with the volume transacted at it,
// the input of the volume profile histogram.
type PriceVolume struct {
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// AssetSnapshot is the current market state of one asset. It is an
// immutable input to the pipeline.
type AssetSnapshot struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	CurrentPrice   float64 `json:"current_price"`
	High24h        float64 `json:"high_24h"`
	Low24h         float64 `json:"low_24h"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
	PriceChange7d  float64 `json:"price_change_percentage_7d"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	Volume24h      float64 `json:"total_volume"`
}

// BasicIndicators are coarse metrics derived from an AssetSnapshot alone,
// available even when no price history could be fetched.
type BasicIndicators struct {
	Trend24h     string  `json:"trend_24h"`
	Trend7d      string  `json:"trend_7d"`
	Momentum     float64 `json:"momentum"`      // [-100,100]
	VolumeSignal string  `json:"volume_signal"` // high|normal|low
	Volatility   float64 `json:"volatility"`    // [0,100]
	Strength     float64 `json:"strength"`      // [0,100]
}

// RSIResult holds the Relative Strength Index and its classification.
type RSIResult struct {
	Value  float64 `json:"value"` // [0,100]
	Signal string  `json:"signal"`
	Trend  string  `json:"trend"`
}

// MACDResult holds the MACD line, signal line and histogram.
type MACDResult struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
	Trend     string  `json:"trend"`
	Crossover string  `json:"crossover"`
}

// BollingerResult holds the Bollinger Bands and the current price's
// position relative to them.
type BollingerResult struct {
	Upper     float64 `json:"upper"`
	Middle    float64 `json:"middle"`
	Lower     float64 `json:"lower"`
	Bandwidth float64 `json:"bandwidth"` // percent of middle
	Position  string  `json:"position"`
	Signal    string  `json:"signal"`
}

// Level is a detected support or resistance price level.
type Level struct {
	Price    float64 `json:"price"`
	Type     string  `json:"type"`
	Strength string  `json:"strength"`
	Touches  int     `json:"touches"`
}

// CandlestickPatternResult classifies the most recent closes into a
// reversal or continuation pattern.
type CandlestickPatternResult struct {
	Pattern     string  `json:"pattern"`
	Signal      string  `json:"signal"`
	Confidence  float64 `json:"confidence"` // [0,100]
	Description string  `json:"description"`
}

// VolumeProfileBucket is one price bucket of the traded-volume histogram.
type VolumeProfileBucket struct {
	PriceLevel float64 `json:"price_level"`
	Volume     float64 `json:"volume"`
	Percentage float64 `json:"percentage"`
}

// EnhancedIndicators bundles the price-history based indicators. A nil
// EnhancedIndicators means the history fetch failed and the prediction
// was derived from basic indicators only.
type EnhancedIndicators struct {
	RSI           RSIResult                `json:"rsi"`
	MACD          MACDResult               `json:"macd"`
	Bollinger     BollingerResult          `json:"bollinger"`
	Supports      []Level                  `json:"supports"`
	Resistances   []Level                  `json:"resistances"`
	Pattern       CandlestickPatternResult `json:"pattern"`
	VolumeProfile []VolumeProfileBucket    `json:"volume_profile,omitempty"`
}

// Reason is one human-readable factor that contributed to a prediction.
type Reason struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Impact   string `json:"impact"`
}

// Prediction is the final output of the pipeline for one asset.
type Prediction struct {
	ID          string              `json:"id"`
	Asset       AssetSnapshot       `json:"asset"`
	Direction   string              `json:"direction"`
	Sentiment   string              `json:"sentiment"`
	Confidence  int                 `json:"confidence"` // [0,100]
	Basic       BasicIndicators     `json:"basic_indicators"`
	Enhanced    *EnhancedIndicators `json:"enhanced_indicators,omitempty"`
	Reasons     []Reason            `json:"reasons"`
	TargetPrice float64             `json:"target_price"`
	StopLoss    float64             `json:"stop_loss"`
	Timeframe   string              `json:"timeframe"`
	Analysis    string              `json:"analysis"`
	Leverage    int                 `json:"leverage"` // [1,10]
	RiskLevel   string              `json:"risk_level"`
	CreatedAt   time.Time           `json:"created_at"`
}
