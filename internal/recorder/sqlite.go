package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while runs write).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			asset_symbol       TEXT NOT NULL,
			index_symbol       TEXT NOT NULL,
			risk_free_series   TEXT,
			start_date         TEXT,
			end_date           TEXT,
			n_obs              INTEGER,
			beta               REAL,
			intercept          REAL,
			residual_std_error REAL,
			degrees_of_freedom INTEGER,
			risk_free_rate     REAL,
			market_return      REAL,
			confidence_level   REAL,
			point_estimate     REAL,
			lower_bound        REAL,
			upper_bound        REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON analysis_runs(asset_symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis appends one completed run.
func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, asset_symbol, index_symbol, risk_free_series,
		 start_date, end_date, n_obs, beta, intercept, residual_std_error,
		 degrees_of_freedom, risk_free_rate, market_return, confidence_level,
		 point_estimate, lower_bound, upper_bound)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.AssetSymbol, rec.IndexSymbol, rec.RiskFreeSeries,
		rec.StartDate.Format("2006-01-02"), rec.EndDate.Format("2006-01-02"),
		rec.NObs, rec.Beta, rec.Intercept, rec.ResidualStdError,
		rec.DegreesOfFreedom, rec.RiskFreeRate, rec.MarketReturn, rec.ConfidenceLevel,
		rec.PointEstimate, rec.LowerBound, rec.UpperBound,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
