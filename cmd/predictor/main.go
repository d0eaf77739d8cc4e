package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coinwatch/predictor/internal/api/coingecko"
	"github.com/coinwatch/predictor/internal/config"
	"github.com/coinwatch/predictor/internal/database"
	"github.com/coinwatch/predictor/internal/predictor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogger(cfg.LogLevel)

	client := coingecko.NewClient(coingecko.Options{
		BaseURL:        cfg.CoinGeckoBaseURL,
		APIKey:         cfg.CoinGeckoAPIKey,
		Timeout:        time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	p := predictor.New(client, predictor.Options{
		LookbackDays:   cfg.LookbackDays,
		RSIPeriod:      cfg.RSIPeriod,
		MACDFast:       cfg.MACDFastPeriod,
		MACDSlow:       cfg.MACDSlowPeriod,
		MACDSignal:     cfg.MACDSignal,
		BBPeriod:       cfg.BBPeriod,
		BBStdDev:       cfg.BBStdDev,
		LevelThreshold: cfg.LevelThreshold,
	})

	ctx := context.Background()

	snapshots, err := client.GetMarketSnapshots(ctx, cfg.WatchAssets)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to fetch market snapshots")
	}
	if len(snapshots) == 0 {
		log.Fatal().Strs("assets", cfg.WatchAssets).Msg("no market data returned for watch list")
	}

	predictions := p.PredictBatch(ctx, snapshots)
	log.Info().Int("assets", len(snapshots)).Int("predictions", len(predictions)).Msg("batch complete")

	var db *database.DB
	if cfg.HasDatabase() {
		db, err = database.New(database.ConnectionParams{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to history store")
		}
		defer db.Close()
	}

	for _, prediction := range predictions {
		log.Info().
			Str("asset", prediction.Asset.ID).
			Str("direction", prediction.Direction).
			Str("sentiment", prediction.Sentiment).
			Int("confidence", prediction.Confidence).
			Float64("target", prediction.TargetPrice).
			Float64("stop", prediction.StopLoss).
			Int("leverage", prediction.Leverage).
			Str("risk", prediction.RiskLevel).
			Str("timeframe", prediction.Timeframe).
			Msg(prediction.Analysis)

		if db != nil {
			if err := db.SavePrediction(prediction); err != nil {
				log.Error().Err(err).Str("asset", prediction.Asset.ID).Msg("failed to save prediction")
			}
		}
	}
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
