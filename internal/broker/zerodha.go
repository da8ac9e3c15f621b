package broker

import (
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/reconstruct"
)

// Zerodha equity tradebook. One row per fill; charges are not included in the
// export, so they are estimated from the published rate card.
var zerodhaRequired = []string{
	"symbol", "trade_date", "trade_type", "quantity", "price", "order_execution_time",
}

const (
	zerodhaTradeDateLayout = "2006-01-02"

	// Flat-fee rate card. These are deliberately approximate: real invoices
	// differ on intraday vs delivery STT and on rounding per contract note.
	zerodhaBrokerageCap = 20.0      // rupees per order
	zerodhaBrokeragePct = 0.0003    // 0.03% of turnover
	zerodhaSTTSellPct   = 0.001     // 0.1% on the sell side
	zerodhaExchangePct  = 0.0000325 // NSE transaction charges
	zerodhaSEBIPct      = 0.000001  // SEBI turnover fee
	zerodhaStampDutyPct = 0.00015   // 0.015% on the buy side
	zerodhaGSTPct       = 0.18      // on brokerage + exchange charges
)

var zerodhaTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseZerodha parses a Zerodha equity tradebook CSV into closed trades.
// Same-day buy and sell fills per symbol are aggregated and matched.
func ParseZerodha(data []byte) ([]model.ClosedTrade, error) {
	t, err := readTable(data)
	if err != nil {
		return nil, &FormatError{Broker: model.BrokerZerodha, Err: err}
	}
	if missing := t.missing(zerodhaRequired...); len(missing) > 0 {
		return nil, &FormatError{Broker: model.BrokerZerodha, Missing: missing}
	}

	fills := make([]model.Fill, 0, len(t.rows))
	for i := range t.rows {
		f := model.Fill{
			Broker:   model.BrokerZerodha,
			Symbol:   t.get(i, "symbol"),
			Action:   model.Action(capitalize(t.get(i, "trade_type"))),
			Quantity: cleanNumber(t.get(i, "quantity")),
			Price:    cleanNumber(t.get(i, "price")),
		}
		f.Value = f.Quantity * f.Price

		if ts, ok := parseDate(t.get(i, "order_execution_time"), zerodhaTimeLayouts...); ok {
			f.Time = &ts
		}
		if d, ok := parseDate(t.get(i, "trade_date"), zerodhaTradeDateLayout); ok {
			f.Date = d
		} else if f.Time != nil {
			f.Date = dateOnly(*f.Time)
		}

		f.Charges = estimateZerodhaCharges(f.Action, f.Value)
		fills = append(fills, f)
	}

	return reconstruct.Aggregate(fills), nil
}

// estimateZerodhaCharges applies the fixed percentage formulas to one fill's
// turnover. Stamp duty applies on the buy side only, STT on the sell side only.
func estimateZerodhaCharges(action model.Action, turnover float64) model.Charges {
	brokerage := turnover * zerodhaBrokeragePct
	if brokerage > zerodhaBrokerageCap {
		brokerage = zerodhaBrokerageCap
	}

	var stt, stampDuty float64
	if action == model.ActionSell {
		stt = turnover * zerodhaSTTSellPct
	}
	if action == model.ActionBuy {
		stampDuty = turnover * zerodhaStampDutyPct
	}

	exchange := turnover * zerodhaExchangePct
	sebi := turnover * zerodhaSEBIPct
	gst := (brokerage + exchange) * zerodhaGSTPct

	return model.Charges{
		Brokerage:       model.Round2(brokerage),
		STT:             model.Round2(stt),
		ExchangeCharges: model.Round2(exchange + sebi),
		StampDuty:       model.Round2(stampDuty),
		GST:             model.Round2(gst),
		Total:           model.Round2(brokerage + stt + exchange + sebi + stampDuty + gst),
	}
}
