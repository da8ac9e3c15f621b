package reconstruct

import (
	"testing"
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

func kfill(action model.Action, qty, price float64, date time.Time) model.Fill {
	return model.Fill{
		Broker:   model.BrokerKotak,
		Symbol:   "TATASTEEL",
		Action:   action,
		Quantity: qty,
		Price:    price,
		Value:    qty * price,
		Date:     date,
		Category: model.CategoryEquity,
	}
}

func TestPairwise_ExactMatch(t *testing.T) {
	d := day(2024, 7, 1)
	fills := []model.Fill{
		kfill(model.ActionBuy, 100, 150, d),
		kfill(model.ActionSell, 100, 155, d),
	}

	trades := Pairwise(fills)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.GrossPnL != 500 {
		t.Errorf("expected gross 500, got %f", tr.GrossPnL)
	}
	if tr.BuyFills != 1 || tr.SellFills != 1 {
		t.Errorf("pairwise trades are always 1x1, got %d/%d", tr.BuyFills, tr.SellFills)
	}
}

func TestPairwise_ToleranceBoundary(t *testing.T) {
	d := day(2024, 7, 1)

	// 9% off: within the 10% tolerance, matches.
	near := Pairwise([]model.Fill{
		kfill(model.ActionBuy, 100, 150, d),
		kfill(model.ActionSell, 109, 155, d),
	})
	if len(near) != 1 {
		t.Fatalf("expected 9%% quantity gap to match, got %d trades", len(near))
	}

	// Exactly 10% off: strict inequality, no match.
	far := Pairwise([]model.Fill{
		kfill(model.ActionBuy, 100, 150, d),
		kfill(model.ActionSell, 110, 155, d),
	})
	if len(far) != 0 {
		t.Fatalf("expected 10%% quantity gap to be rejected, got %d trades", len(far))
	}
}

func TestPairwise_FirstUnconsumedSellWins(t *testing.T) {
	d := day(2024, 7, 1)
	fills := []model.Fill{
		kfill(model.ActionBuy, 100, 150, d),
		kfill(model.ActionBuy, 100, 151, d),
		kfill(model.ActionSell, 100, 155, d),
		kfill(model.ActionSell, 100, 160, d),
	}

	trades := Pairwise(fills)
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	// Buys in row order take sells in row order.
	if trades[0].EntryPrice != 150 || trades[0].ExitPrice != 155 {
		t.Errorf("trade 0: got %f -> %f", trades[0].EntryPrice, trades[0].ExitPrice)
	}
	if trades[1].EntryPrice != 151 || trades[1].ExitPrice != 160 {
		t.Errorf("trade 1: got %f -> %f", trades[1].EntryPrice, trades[1].ExitPrice)
	}
}

func TestPairwise_ConsumedSellNotReused(t *testing.T) {
	d := day(2024, 7, 1)
	fills := []model.Fill{
		kfill(model.ActionBuy, 100, 150, d),
		kfill(model.ActionBuy, 100, 151, d),
		kfill(model.ActionSell, 100, 155, d),
	}

	trades := Pairwise(fills)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].EntryPrice != 150 {
		t.Errorf("expected first buy to take the sell, got entry %f", trades[0].EntryPrice)
	}
}

func TestPairwise_ChargesSummedAcrossBothLegs(t *testing.T) {
	d := day(2024, 7, 1)
	buy := kfill(model.ActionBuy, 100, 150, d)
	buy.Charges = model.Charges{Brokerage: 20, GST: 3.6, STT: 1.5, Misc: 0.4, Total: 25.5}
	sell := kfill(model.ActionSell, 100, 155, d)
	sell.Charges = model.Charges{Brokerage: 20, GST: 3.7, STT: 1.8, Misc: 0.5, Total: 26}

	trades := Pairwise([]model.Fill{buy, sell})
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	tr := trades[0]
	if tr.TotalCharges != 51.5 {
		t.Errorf("expected total charges 51.5, got %f", tr.TotalCharges)
	}
	if tr.NetPnL != 448.5 {
		t.Errorf("expected net 448.5, got %f", tr.NetPnL)
	}
}
