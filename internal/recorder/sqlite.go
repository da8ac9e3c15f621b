package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends run summaries to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			analyzed_at       INTEGER NOT NULL,
			broker            TEXT,
			trade_category    TEXT,
			file_name         TEXT,
			total_trades      INTEGER,
			winning_trades    INTEGER,
			win_rate          REAL,
			net_pnl           REAL,
			total_charges     REAL,
			avg_discipline    REAL,
			charges_estimated INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(analyzed_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO analysis_runs (
			analyzed_at, broker, trade_category, file_name,
			total_trades, winning_trades, win_rate,
			net_pnl, total_charges, avg_discipline, charges_estimated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.AnalyzedAt.Unix(),
		string(rec.Broker),
		string(rec.TradeCategory),
		rec.FileName,
		rec.TotalTrades,
		rec.WinningTrades,
		rec.WinRate,
		rec.NetPnL,
		rec.TotalCharges,
		rec.AvgDiscipline,
		boolToInt(rec.ChargesEstimated),
	)
	return err
}

func (r *SQLiteRecorder) Close() error { return r.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
