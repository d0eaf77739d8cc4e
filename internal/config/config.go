package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	// Market data provider
	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	WatchAssets      []string
	LookbackDays     int
	RequestTimeout   int // seconds
	RequestsPerSec   int

	// Indicator parameters
	RSIPeriod      int
	MACDFastPeriod int
	MACDSlowPeriod int
	MACDSignal     int
	BBPeriod       int
	BBStdDev       float64
	LevelThreshold float64

	// History store
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Notifier
	TelegramBotToken string
	TelegramChatIDs  []int64

	LogLevel string
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		CoinGeckoBaseURL: getEnvWithDefault("COINGECKO_BASE_URL", ""),
		CoinGeckoAPIKey:  os.Getenv("COINGECKO_API_KEY"),
		WatchAssets:      getEnvListWithDefault("WATCH_ASSETS", []string{"bitcoin", "ethereum", "solana"}),
		LookbackDays:     getEnvIntWithDefault("LOOKBACK_DAYS", 90),
		RequestTimeout:   getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		RequestsPerSec:   getEnvIntWithDefault("REQUESTS_PER_SEC", 5),

		RSIPeriod:      getEnvIntWithDefault("RSI_PERIOD", 14),
		MACDFastPeriod: getEnvIntWithDefault("MACD_FAST_PERIOD", 12),
		MACDSlowPeriod: getEnvIntWithDefault("MACD_SLOW_PERIOD", 26),
		MACDSignal:     getEnvIntWithDefault("MACD_SIGNAL_PERIOD", 9),
		BBPeriod:       getEnvIntWithDefault("BB_PERIOD", 20),
		BBStdDev:       getEnvFloatWithDefault("BB_STD_DEV", 2.0),
		LevelThreshold: getEnvFloatWithDefault("LEVEL_THRESHOLD", 0.02),

		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvWithDefault("DB_PORT", "5432"),
		DBUser:     getEnvWithDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvWithDefault("DB_NAME", "predictor"),
		DBSSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatIDs:  getEnvInt64List("TELEGRAM_CHAT_IDS"),

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// HasDatabase reports whether a history store is configured.
func (c *Config) HasDatabase() bool {
	return c.DBPassword != "" || os.Getenv("DB_HOST") != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer in environment, using default")
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid float in environment, using default")
	}
	return defaultValue
}

func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getEnvInt64List(key string) []int64 {
	var ids []int64
	for _, item := range strings.Split(os.Getenv(key), ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if id, err := strconv.ParseInt(item, 10, 64); err == nil {
			ids = append(ids, id)
		} else {
			log.Warn().Str("key", key).Str("value", item).Msg("invalid chat id in environment, skipping")
		}
	}
	return ids
}
