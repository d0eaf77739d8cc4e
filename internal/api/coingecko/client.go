package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/coinwatch/predictor/internal/platform/http"
	"github.com/coinwatch/predictor/models"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Client talks to a CoinGecko-compatible market data API. It is the
// pipeline's price-history provider and market snapshot source.
type Client struct {
	http    *platformhttp.Client
	baseURL string
	apiKey  string
	logger  zerolog.Logger
}

// Options configures the client.
type Options struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RequestsPerSec int
}

// NewClient creates a market data client.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        opts.Timeout,
			RequestsPerSec: opts.RequestsPerSec,
		}),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  opts.APIKey,
		logger:  log.With().Str("component", "coingecko").Logger(),
	}
}

// marketEntry mirrors one element of the /coins/markets response.
type marketEntry struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	High24h        float64 `json:"high_24h"`
	Low24h         float64 `json:"low_24h"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
	PriceChange7d  float64 `json:"price_change_percentage_7d_in_currency"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	TotalVolume    float64 `json:"total_volume"`
}

// marketChart mirrors the /coins/{id}/market_chart response.
type marketChart struct {
	Prices       [][]float64 `json:"prices"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// GetMarketSnapshots fetches current market state for the given asset
// ids in one request.
func (c *Client) GetMarketSnapshots(ctx context.Context, ids []string) ([]models.AssetSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(ids, ","))
	q.Set("price_change_percentage", "7d")
	q.Set("per_page", strconv.Itoa(len(ids)))

	var entries []marketEntry
	if err := c.getJSON(ctx, "/coins/markets", q, &entries); err != nil {
		return nil, fmt.Errorf("fetch market snapshots: %w", err)
	}

	snapshots := make([]models.AssetSnapshot, 0, len(entries))
	for _, e := range entries {
		snapshots = append(snapshots, models.AssetSnapshot{
			ID:             e.ID,
			Name:           e.Name,
			Symbol:         e.Symbol,
			CurrentPrice:   e.CurrentPrice,
			High24h:        e.High24h,
			Low24h:         e.Low24h,
			PriceChange24h: e.PriceChange24h,
			PriceChange7d:  e.PriceChange7d,
			MarketCap:      e.MarketCap,
			MarketCapRank:  e.MarketCapRank,
			Volume24h:      e.TotalVolume,
		})
	}
	c.logger.Debug().Int("requested", len(ids)).Int("received", len(snapshots)).Msg("fetched market snapshots")
	return snapshots, nil
}

// GetPriceHistory fetches lookbackDays of daily close samples for one
// asset, ordered ascending by timestamp.
func (c *Client) GetPriceHistory(ctx context.Context, assetID string, lookbackDays int) ([]models.PriceSample, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("days", strconv.Itoa(lookbackDays))
	q.Set("interval", "daily")

	var chart marketChart
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(assetID)+"/market_chart", q, &chart); err != nil {
		return nil, fmt.Errorf("fetch price history for %s: %w", assetID, err)
	}

	samples := make([]models.PriceSample, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		if len(p) < 2 || p[1] <= 0 {
			continue
		}
		samples = append(samples, models.PriceSample{
			Timestamp: int64(p[0]),
			Price:     p[1],
		})
	}
	return samples, nil
}

// GetVolumeHistory fetches historical (price, volume) pairs for the
// volume profile. Samples missing either side are dropped.
func (c *Client) GetVolumeHistory(ctx context.Context, assetID string, lookbackDays int) ([]models.PriceVolume, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("days", strconv.Itoa(lookbackDays))
	q.Set("interval", "daily")

	var chart marketChart
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(assetID)+"/market_chart", q, &chart); err != nil {
		return nil, fmt.Errorf("fetch volume history for %s: %w", assetID, err)
	}

	n := len(chart.Prices)
	if len(chart.TotalVolumes) < n {
		n = len(chart.TotalVolumes)
	}
	pairs := make([]models.PriceVolume, 0, n)
	for i := 0; i < n; i++ {
		p, v := chart.Prices[i], chart.TotalVolumes[i]
		if len(p) < 2 || len(v) < 2 || p[1] <= 0 {
			continue
		}
		pairs = append(pairs, models.PriceVolume{Price: p[1], Volume: v[1]})
	}
	return pairs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.http.DoRequest(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
