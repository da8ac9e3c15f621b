package broker

import (
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/reconstruct"
)

// ICICI Direct equity orderbook. Charges come from columns; the export has no
// time-of-day, so holding periods are unknown and same-day groups are treated
// as intraday.
var iciciRequired = []string{
	"Date", "Stock", "Action", "Qty", "Price", "Trade Value",
	"STT", "Transaction and SEBI Turnover charges", "Stamp Duty",
	"Brokerage Incl. Taxes",
}

// ICICI dates look like "17-Dec-25".
const iciciDateLayout = "02-Jan-06"

// ParseICICI parses an ICICI Direct orderbook CSV into closed trades.
// Numeric cells may carry thousands separators; they are cleaned before
// coercion. Partial fills are aggregated per symbol and day.
func ParseICICI(data []byte) ([]model.ClosedTrade, error) {
	t, err := readTable(data)
	if err != nil {
		return nil, &FormatError{Broker: model.BrokerICICI, Err: err}
	}
	if missing := t.missing(iciciRequired...); len(missing) > 0 {
		return nil, &FormatError{Broker: model.BrokerICICI, Missing: missing}
	}

	fills := make([]model.Fill, 0, len(t.rows))
	for i := range t.rows {
		f := model.Fill{
			Broker:   model.BrokerICICI,
			Symbol:   t.get(i, "Stock"),
			Action:   model.Action(capitalize(t.get(i, "Action"))),
			Quantity: cleanNumber(t.get(i, "Qty")),
			Price:    cleanNumber(t.get(i, "Price")),
			Value:    cleanNumber(t.get(i, "Trade Value")),
		}
		if d, ok := parseDate(t.get(i, "Date"), iciciDateLayout); ok {
			f.Date = d
		}

		stt := cleanNumber(t.get(i, "STT"))
		exchange := cleanNumber(t.get(i, "Transaction and SEBI Turnover charges"))
		stampDuty := cleanNumber(t.get(i, "Stamp Duty"))
		brokerage := cleanNumber(t.get(i, "Brokerage Incl. Taxes"))
		f.Charges = model.Charges{
			Brokerage:       brokerage,
			STT:             stt,
			ExchangeCharges: exchange,
			StampDuty:       stampDuty,
			Total:           stt + exchange + stampDuty + brokerage,
		}
		fills = append(fills, f)
	}

	return reconstruct.Aggregate(fills), nil
}
