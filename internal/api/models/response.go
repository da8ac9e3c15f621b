package models

import (
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// AnalyzeResponse is returned after a successful analysis run.
type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Broker        string `json:"broker"`
	BrokerName    string `json:"broker_name"`
	TradeCategory string `json:"trade_category"`

	// ChargesEstimated warns the consumer that charge totals are approximate
	// (computed from rate formulas, not the broker's contract notes).
	ChargesEstimated bool   `json:"charges_estimated"`
	ChargesNote      string `json:"charges_note,omitempty"`

	Stats           *model.PortfolioStats `json:"stats"`
	Trades          []TradeRow            `json:"trades"`
	Patterns        []model.Pattern       `json:"patterns"`
	Recommendations []model.Pattern       `json:"recommendations"`
}

// DetectResponse reports format auto-detection.
type DetectResponse struct {
	Detected      bool   `json:"detected"`
	Broker        string `json:"broker,omitempty"`
	BrokerName    string `json:"broker_name,omitempty"`
	TradeCategory string `json:"trade_category,omitempty"`
}

// TradeRow is one closed trade in API form.
type TradeRow struct {
	Broker    string     `json:"broker"`
	Symbol    string     `json:"symbol"`
	EntryDate string     `json:"entry_date"`
	EntryTime *time.Time `json:"entry_time,omitempty"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`

	Quantity   float64 `json:"quantity"`
	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price"`

	GrossPnL     float64 `json:"gross_pnl"`
	TotalCharges float64 `json:"total_charges"`
	NetPnL       float64 `json:"net_pnl"`

	HoldingMinutes int     `json:"holding_period_minutes"`
	TradeType      string  `json:"trade_type"`
	ReturnPct      float64 `json:"return_pct"`

	DisciplineScore int    `json:"discipline_score"`
	Grade           string `json:"grade"`
	Win             bool   `json:"win"`

	BuyFills  int `json:"buy_fills"`
	SellFills int `json:"sell_fills"`
}

// FromTrade converts a domain trade to its API row.
func FromTrade(t model.ClosedTrade) TradeRow {
	return TradeRow{
		Broker:          string(t.Broker),
		Symbol:          t.Symbol,
		EntryDate:       t.EntryDate.Format("2006-01-02"),
		EntryTime:       t.EntryTime,
		ExitTime:        t.ExitTime,
		Quantity:        t.Quantity,
		EntryPrice:      t.EntryPrice,
		ExitPrice:       t.ExitPrice,
		GrossPnL:        t.GrossPnL,
		TotalCharges:    t.TotalCharges,
		NetPnL:          t.NetPnL,
		HoldingMinutes:  t.HoldingMinutes,
		TradeType:       string(t.TradeType),
		ReturnPct:       t.ReturnPct,
		DisciplineScore: t.DisciplineScore,
		Grade:           t.Grade,
		Win:             t.Win,
		BuyFills:        t.BuyFills,
		SellFills:       t.SellFills,
	}
}
