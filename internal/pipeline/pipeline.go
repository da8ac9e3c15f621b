// Package pipeline runs one file's full analysis: format detection, broker
// normalization and trade reconstruction, discipline scoring, portfolio
// aggregation and pattern detection. A run owns all of its intermediate state;
// the engine holds nothing between runs, so concurrent analyses of different
// files are independent.
package pipeline

import (
	"errors"
	"sort"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/analysis"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/broker"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/scoring"
)

// ErrUnknownFormat means auto-detection failed and no broker was supplied.
var ErrUnknownFormat = errors.New("could not auto-detect broker format, please select a broker manually")

// Result is the complete output for one analyzed file.
type Result struct {
	Broker        model.Broker        `json:"broker"`
	TradeCategory model.TradeCategory `json:"trade_category"`

	// ChargesEstimated flags brokers whose charges come from fixed percentage
	// formulas rather than the export itself; consumers must present those
	// totals as approximate.
	ChargesEstimated bool `json:"charges_estimated"`

	Trades          []model.ClosedTrade   `json:"trades"`
	Stats           *model.PortfolioStats `json:"stats"`
	Patterns        []model.Pattern       `json:"patterns"`
	Recommendations []model.Pattern       `json:"recommendations"`
}

type Engine struct {
	scorer scoring.Scorer
}

// New builds an engine with the given scoring strategy; nil selects the
// default heuristic.
func New(s scoring.Scorer) *Engine {
	if s == nil {
		s = scoring.NewHeuristic(scoring.DefaultConfig())
	}
	return &Engine{scorer: s}
}

// Run analyzes one raw CSV file. An empty broker triggers auto-detection.
func (e *Engine) Run(raw []byte, b model.Broker, cat model.TradeCategory) (*Result, error) {
	if b == "" {
		detected, detectedCat, ok := broker.Detect(raw)
		if !ok {
			return nil, ErrUnknownFormat
		}
		b, cat = detected, detectedCat
	}

	trades, err := broker.ParseFile(raw, b, cat)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, broker.ErrNoCompleteTrades
	}

	// Chronological order is the caller-facing contract for the table, and
	// the losing-streak detector depends on it. Stable sort keeps each day's
	// reconstruction order.
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryDate.Before(trades[j].EntryDate)
	})

	scoring.Apply(trades, e.scorer)
	stats := analysis.Summarize(trades)

	return &Result{
		Broker:           b,
		TradeCategory:    cat,
		ChargesEstimated: broker.ChargesEstimated(b),
		Trades:           trades,
		Stats:            stats,
		Patterns:         analysis.DetectPatterns(trades),
		Recommendations:  analysis.Recommend(stats),
	}, nil
}
