package model

import "time"

// TradeType classifies a closed trade by holding style.
type TradeType string

const (
	TradeIntraday TradeType = "Intraday"
	TradeDelivery TradeType = "Delivery"
)

// ClosedTrade is one fully exited round-trip position: a matched buy+sell pair
// or an aggregated same-day group of partial fills.
// This is the primary artifact for "what happened" in an analysis.
type ClosedTrade struct {
	Broker Broker
	Symbol string

	EntryDate time.Time
	EntryTime *time.Time
	ExitTime  *time.Time

	Quantity   float64
	EntryPrice float64
	ExitPrice  float64

	GrossPnL     float64
	Charges      Charges
	TotalCharges float64
	NetPnL       float64

	HoldingMinutes int
	TradeType      TradeType

	// Fill counts on each side of the reconstruction.
	BuyFills  int
	SellFills int

	Category TradeCategory
	Exchange string

	// Assigned after reconstruction by the scorer.
	DisciplineScore int
	Grade           string
	Win             bool
	ReturnPct       float64
}

// Notional is the position value at entry.
func (t ClosedTrade) Notional() float64 {
	return t.Quantity * t.EntryPrice
}

// PortfolioStats is a pure aggregate over one file's closed trades.
type PortfolioStats struct {
	TotalTrades   int     `json:"total_trades"`
	WinningTrades int     `json:"winning_trades"`
	LosingTrades  int     `json:"losing_trades"`
	WinRate       float64 `json:"win_rate"`

	GrossPnL     float64 `json:"gross_pnl"`
	TotalCharges float64 `json:"total_charges"`
	NetPnL       float64 `json:"net_pnl"`

	AvgWin  float64 `json:"avg_win"`
	AvgLoss float64 `json:"avg_loss"`

	LargestWin  float64 `json:"largest_win"`
	LargestLoss float64 `json:"largest_loss"`

	AvgDisciplineScore float64 `json:"avg_discipline_score"`

	TotalBrokerage float64 `json:"total_brokerage"`
	TotalSTT       float64 `json:"total_stt"`

	// ProfitFactor is total winning P&L over absolute losing P&L. Zero when
	// there are no losing trades; callers should check TotalTrades before
	// reading it as performance.
	ProfitFactor float64 `json:"profit_factor"`
}

// Severity grades a behavioral pattern advisory.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Pattern is one behavioral advisory. Ephemeral: recomputed per analysis run.
type Pattern struct {
	Type     string   `json:"type"` // "info", "warning" or "danger"
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
