// Package recorder persists a one-line summary of each analysis run for
// later review. Trade rows are never persisted; only the aggregate outcome.
package recorder

import (
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// RunRecord is the summary row written after a completed analysis.
type RunRecord struct {
	AnalyzedAt       time.Time
	Broker           model.Broker
	TradeCategory    model.TradeCategory
	FileName         string
	TotalTrades      int
	WinningTrades    int
	WinRate          float64
	NetPnL           float64
	TotalCharges     float64
	AvgDiscipline    float64
	ChargesEstimated bool
}

// Recorder persists run history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
