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
	"github.com/coinwatch/predictor/internal/notifier"
	"github.com/coinwatch/predictor/internal/predictor"
)

// broadcast runs one prediction batch, persists it, grades previously
// open predictions against current prices and pushes a digest to the
// configured Telegram chats.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogger(cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN not set")
	}
	if len(cfg.TelegramChatIDs) == 0 {
		log.Fatal().Msg("TELEGRAM_CHAT_IDS not set")
	}

	tg, err := notifier.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatIDs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telegram notifier")
	}

	db, err := database.New(database.ConnectionParams{
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

	// Grade yesterday's open predictions against today's prices first
	currentPrices := make(map[string]float64, len(snapshots))
	for _, s := range snapshots {
		currentPrices[s.ID] = s.CurrentPrice
	}
	resolved, err := db.EvaluatePredictions(currentPrices)
	if err != nil {
		log.Error().Err(err).Msg("failed to evaluate open predictions")
	} else if resolved > 0 {
		log.Info().Int("resolved", resolved).Msg("graded open predictions")
	}

	predictions := p.PredictBatch(ctx, snapshots)
	for _, prediction := range predictions {
		if err := db.SavePrediction(prediction); err != nil {
			log.Error().Err(err).Str("asset", prediction.Asset.ID).Msg("failed to save prediction")
		}
	}

	tg.SendPredictions(predictions)
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
