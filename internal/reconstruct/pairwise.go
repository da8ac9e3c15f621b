package reconstruct

import (
	"math"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// pairQuantityTolerance allows a sell fill to match a buy fill when their
// quantities agree within 10% of the buy quantity.
const pairQuantityTolerance = 0.1

// Pairwise reconstructs trades by greedy matching within a (symbol, date)
// group. Used for brokers whose statements list distinct intraday round trips
// as separate rows (Kotak): each buy fill, in row order, takes the first
// unconsumed sell fill of near-equal quantity; a consumed sell never matches a
// later buy. Buys with no eligible sell are dropped without error.
func Pairwise(fills []model.Fill) []model.ClosedTrade {
	var trades []model.ClosedTrade

	for _, g := range groupFills(fills) {
		if len(g.buys) == 0 || len(g.sells) == 0 {
			continue
		}

		consumed := make([]bool, len(g.sells))
		for _, buy := range g.buys {
			match := -1
			for j, sell := range g.sells {
				if consumed[j] {
					continue
				}
				if math.Abs(sell.Quantity-buy.Quantity) < buy.Quantity*pairQuantityTolerance {
					match = j
					break
				}
			}
			if match < 0 {
				continue
			}
			sell := g.sells[match]
			consumed[match] = true

			gross := (sell.Price - buy.Price) * buy.Quantity
			charges := roundCharges(buy.Charges.Add(sell.Charges))

			trades = append(trades, model.ClosedTrade{
				Broker:         buy.Broker,
				Symbol:         g.symbol,
				EntryDate:      g.date,
				EntryTime:      buy.Time,
				ExitTime:       sell.Time,
				Quantity:       buy.Quantity,
				EntryPrice:     model.Round2(buy.Price),
				ExitPrice:      model.Round2(sell.Price),
				GrossPnL:       model.Round2(gross),
				Charges:        charges,
				TotalCharges:   charges.Total,
				NetPnL:         model.Round2(gross - charges.Total),
				HoldingMinutes: holdingMinutes(buy.Time, sell.Time),
				TradeType:      classify(buy.Time, sell.Time),
				BuyFills:       1,
				SellFills:      1,
				Category:       buy.Category,
				Exchange:       buy.Exchange,
			})
		}
	}
	return trades
}
