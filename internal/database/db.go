package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/coinwatch/predictor/models"
)

// DB is the prediction history store. It records emitted predictions and
// later grades them against realized prices.
type DB struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters.
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// StoredPrediction is the persisted subset of a prediction needed for
// outcome evaluation.
type StoredPrediction struct {
	ID          string
	AssetID     string
	Symbol      string
	Direction   string
	EntryPrice  float64
	TargetPrice float64
	StopLoss    float64
	CreatedAt   time.Time
}

// New opens a database connection and ensures the schema exists.
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS predictions (
			id TEXT PRIMARY KEY,
			asset_id TEXT NOT NULL,
			symbol TEXT NOT NULL,
			direction TEXT NOT NULL,
			sentiment TEXT NOT NULL,
			confidence INT NOT NULL,
			entry_price DOUBLE PRECISION NOT NULL,
			target_price DOUBLE PRECISION NOT NULL,
			stop_loss DOUBLE PRECISION NOT NULL,
			leverage INT NOT NULL,
			risk_level TEXT NOT NULL,
			timeframe TEXT NOT NULL,
			analysis TEXT,
			outcome TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMP NOT NULL,
			evaluated_at TIMESTAMP
		)
	`)
	return err
}

// SavePrediction records one emitted prediction.
func (db *DB) SavePrediction(p *models.Prediction) error {
	_, err := db.Exec(`
		INSERT INTO predictions (
			id, asset_id, symbol, direction, sentiment, confidence,
			entry_price, target_price, stop_loss, leverage, risk_level,
			timeframe, analysis, outcome, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		p.ID, p.Asset.ID, p.Asset.Symbol, p.Direction, p.Sentiment, p.Confidence,
		p.Asset.CurrentPrice, p.TargetPrice, p.StopLoss, p.Leverage, p.RiskLevel,
		p.Timeframe, p.Analysis, models.OutcomeOpen, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save prediction %s: %w", p.ID, err)
	}
	return nil
}

// ListOpenPredictions returns predictions that have not been graded yet.
func (db *DB) ListOpenPredictions() ([]StoredPrediction, error) {
	rows, err := db.Query(`
		SELECT id, asset_id, symbol, direction, entry_price, target_price, stop_loss, created_at
		FROM predictions
		WHERE outcome = $1
		ORDER BY created_at
	`, models.OutcomeOpen)
	if err != nil {
		return nil, fmt.Errorf("list open predictions: %w", err)
	}
	defer rows.Close()

	var preds []StoredPrediction
	for rows.Next() {
		var p StoredPrediction
		if err := rows.Scan(&p.ID, &p.AssetID, &p.Symbol, &p.Direction,
			&p.EntryPrice, &p.TargetPrice, &p.StopLoss, &p.CreatedAt); err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}

// maxPredictionAge is how long an open prediction stays gradeable before
// it expires unresolved.
const maxPredictionAge = 7 * 24 * time.Hour

// EvaluatePredictions grades open predictions against current prices.
// LONG hits its target when price reaches TargetPrice and is stopped out
// at StopLoss; SHORT is mirrored. Predictions older than a week expire.
// Assets missing from currentPrices are left open. Returns the number of
// predictions resolved.
func (db *DB) EvaluatePredictions(currentPrices map[string]float64) (int, error) {
	open, err := db.ListOpenPredictions()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	resolved := 0
	for _, p := range open {
		price, ok := currentPrices[p.AssetID]
		outcome := ""
		switch {
		case ok && p.Direction == models.DirectionLong && price >= p.TargetPrice:
			outcome = models.OutcomeTargetHit
		case ok && p.Direction == models.DirectionLong && price <= p.StopLoss:
			outcome = models.OutcomeStoppedOut
		case ok && p.Direction == models.DirectionShort && price <= p.TargetPrice:
			outcome = models.OutcomeTargetHit
		case ok && p.Direction == models.DirectionShort && price >= p.StopLoss:
			outcome = models.OutcomeStoppedOut
		case now.Sub(p.CreatedAt) > maxPredictionAge:
			outcome = models.OutcomeExpired
		default:
			continue
		}

		if _, err := db.Exec(`
			UPDATE predictions SET outcome = $1, evaluated_at = $2 WHERE id = $3
		`, outcome, now, p.ID); err != nil {
			return resolved, fmt.Errorf("grade prediction %s: %w", p.ID, err)
		}
		resolved++
	}
	return resolved, nil
}
