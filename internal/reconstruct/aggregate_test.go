package reconstruct

import (
	"testing"
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm, ss int) *time.Time {
	ts := time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
	return &ts
}

func fill(symbol string, action model.Action, qty, price float64, date time.Time, ts *time.Time) model.Fill {
	return model.Fill{
		Broker:   model.BrokerZerodha,
		Symbol:   symbol,
		Action:   action,
		Quantity: qty,
		Price:    price,
		Value:    qty * price,
		Date:     date,
		Time:     ts,
	}
}

func TestAggregate_WeightedAverage(t *testing.T) {
	d := day(2024, 6, 4)
	fills := []model.Fill{
		fill("INFY", model.ActionBuy, 50, 100, d, at(2024, 6, 4, 9, 30, 0)),
		fill("INFY", model.ActionBuy, 50, 102, d, at(2024, 6, 4, 9, 45, 0)),
		fill("INFY", model.ActionSell, 100, 105, d, at(2024, 6, 4, 14, 0, 0)),
	}

	trades := Aggregate(fills)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}

	tr := trades[0]
	if tr.Quantity != 100 {
		t.Errorf("expected quantity 100, got %f", tr.Quantity)
	}
	if tr.EntryPrice != 101.00 {
		t.Errorf("expected weighted entry 101.00, got %f", tr.EntryPrice)
	}
	if tr.ExitPrice != 105.00 {
		t.Errorf("expected exit 105.00, got %f", tr.ExitPrice)
	}
	if tr.GrossPnL != 400.00 {
		t.Errorf("expected gross 400.00, got %f", tr.GrossPnL)
	}
	if tr.BuyFills != 2 || tr.SellFills != 1 {
		t.Errorf("expected 2 buy fills and 1 sell fill, got %d/%d", tr.BuyFills, tr.SellFills)
	}
	// Entry is the earliest buy, exit the latest sell: 09:30 to 14:00.
	if tr.HoldingMinutes != 270 {
		t.Errorf("expected 270 holding minutes, got %d", tr.HoldingMinutes)
	}
	if tr.TradeType != model.TradeIntraday {
		t.Errorf("expected intraday, got %s", tr.TradeType)
	}
}

func TestAggregate_UnbalancedGroupDropped(t *testing.T) {
	d := day(2024, 6, 4)
	fills := []model.Fill{
		fill("INFY", model.ActionBuy, 100, 100, d, nil),
		fill("INFY", model.ActionSell, 40, 105, d, nil),
	}
	if trades := Aggregate(fills); len(trades) != 0 {
		t.Fatalf("expected unbalanced group to be dropped, got %d trades", len(trades))
	}
}

func TestAggregate_OneSidedGroupDropped(t *testing.T) {
	d := day(2024, 6, 4)
	fills := []model.Fill{
		fill("INFY", model.ActionBuy, 100, 100, d, nil),
		fill("TCS", model.ActionSell, 10, 3800, d, nil),
	}
	if trades := Aggregate(fills); len(trades) != 0 {
		t.Fatalf("expected one-sided groups to be dropped, got %d trades", len(trades))
	}
}

func TestAggregate_FractionalQuantityWithinEpsilon(t *testing.T) {
	d := day(2024, 6, 4)
	fills := []model.Fill{
		fill("GOLDBEES", model.ActionBuy, 10.005, 60, d, nil),
		fill("GOLDBEES", model.ActionSell, 10.0, 60.5, d, nil),
	}
	if trades := Aggregate(fills); len(trades) != 1 {
		t.Fatalf("expected fractional imbalance within epsilon to close, got %d trades", len(trades))
	}
}

func TestAggregate_GroupsBySymbolAndDate(t *testing.T) {
	d1, d2 := day(2024, 6, 4), day(2024, 6, 5)
	fills := []model.Fill{
		fill("INFY", model.ActionBuy, 10, 100, d1, nil),
		fill("INFY", model.ActionSell, 10, 101, d1, nil),
		fill("TCS", model.ActionBuy, 5, 3800, d1, nil),
		fill("TCS", model.ActionSell, 5, 3810, d1, nil),
		fill("INFY", model.ActionBuy, 10, 102, d2, nil),
		fill("INFY", model.ActionSell, 10, 103, d2, nil),
	}

	trades := Aggregate(fills)
	if len(trades) != 3 {
		t.Fatalf("expected 3 trades, got %d", len(trades))
	}
	// First-appearance order of groups.
	if trades[0].Symbol != "INFY" || !trades[0].EntryDate.Equal(d1) {
		t.Errorf("trade 0: got %s %s", trades[0].Symbol, trades[0].EntryDate)
	}
	if trades[1].Symbol != "TCS" {
		t.Errorf("trade 1: got %s", trades[1].Symbol)
	}
	if trades[2].Symbol != "INFY" || !trades[2].EntryDate.Equal(d2) {
		t.Errorf("trade 2: got %s %s", trades[2].Symbol, trades[2].EntryDate)
	}
}

func TestAggregate_NoTimestampsMeansIntradayAndZeroHolding(t *testing.T) {
	d := day(2024, 6, 4)
	fills := []model.Fill{
		fill("INFY", model.ActionBuy, 10, 100, d, nil),
		fill("INFY", model.ActionSell, 10, 101, d, nil),
	}

	trades := Aggregate(fills)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].HoldingMinutes != 0 {
		t.Errorf("expected unknown holding period to be 0, got %d", trades[0].HoldingMinutes)
	}
	if trades[0].TradeType != model.TradeIntraday {
		t.Errorf("expected intraday, got %s", trades[0].TradeType)
	}
	if trades[0].EntryTime != nil || trades[0].ExitTime != nil {
		t.Error("expected nil entry/exit times")
	}
}
