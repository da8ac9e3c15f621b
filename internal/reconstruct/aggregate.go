package reconstruct

import (
	"math"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// Aggregate reconstructs trades by summing each side of a (symbol, date)
// group. Used for brokers that report raw partial fills without pairing
// (Zerodha, ICICI): if total buy and sell quantities balance within the
// epsilon, the whole group collapses to exactly one trade at quantity-weighted
// average prices; otherwise the group is an unbalanced position and is
// dropped without error.
func Aggregate(fills []model.Fill) []model.ClosedTrade {
	var trades []model.ClosedTrade

	for _, g := range groupFills(fills) {
		if len(g.buys) == 0 || len(g.sells) == 0 {
			continue
		}

		var buyQty, sellQty, buyValue, sellValue float64
		for _, f := range g.buys {
			buyQty += f.Quantity
			buyValue += f.Quantity * f.Price
		}
		for _, f := range g.sells {
			sellQty += f.Quantity
			sellValue += f.Quantity * f.Price
		}
		if buyQty <= 0 || math.Abs(buyQty-sellQty) > quantityEpsilon {
			continue
		}

		avgBuy := buyValue / buyQty
		avgSell := sellValue / sellQty

		entry := earliestTime(g.buys)
		exit := latestTime(g.sells)

		gross := (avgSell - avgBuy) * buyQty
		charges := roundCharges(sumCharges(g.buys, g.sells))

		trades = append(trades, model.ClosedTrade{
			Broker:         g.buys[0].Broker,
			Symbol:         g.symbol,
			EntryDate:      g.date,
			EntryTime:      entry,
			ExitTime:       exit,
			Quantity:       buyQty,
			EntryPrice:     model.Round2(avgBuy),
			ExitPrice:      model.Round2(avgSell),
			GrossPnL:       model.Round2(gross),
			Charges:        charges,
			TotalCharges:   charges.Total,
			NetPnL:         model.Round2(gross - charges.Total),
			HoldingMinutes: holdingMinutes(entry, exit),
			TradeType:      classify(entry, exit),
			BuyFills:       len(g.buys),
			SellFills:      len(g.sells),
			Category:       g.buys[0].Category,
			Exchange:       g.buys[0].Exchange,
		})
	}
	return trades
}
