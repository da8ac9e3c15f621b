package broker

import (
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/reconstruct"
)

// Kotak Securities transaction statement, equity and derivatives variants.
// The export carries a full per-fill charge breakdown, so nothing is estimated.
var kotakRequired = []string{
	"Trade Date", "Security Name", "Transaction Type", "Quantity",
	"Market Rate", "Total Charges", "Brokerage", "GST", "STT/CTT", "Misc.",
}

const (
	kotakDateLayout     = "02/01/2006"
	kotakDateTimeLayout = "02/01/2006 15:04:05"
)

// ParseKotak parses a Kotak transaction statement CSV into closed trades.
// Kotak reports distinct intraday round trips as separate fill rows, so buys
// are matched to sells pairwise rather than aggregated per day.
func ParseKotak(data []byte, cat model.TradeCategory) ([]model.ClosedTrade, error) {
	if cat == "" {
		cat = model.CategoryEquity
	}

	t, err := readTable(data)
	if err != nil {
		return nil, &FormatError{Broker: model.BrokerKotak, Err: err}
	}
	if missing := t.missing(kotakRequired...); len(missing) > 0 {
		return nil, &FormatError{Broker: model.BrokerKotak, Missing: missing}
	}

	fills := make([]model.Fill, 0, len(t.rows))
	for i := range t.rows {
		f := model.Fill{
			Broker:   model.BrokerKotak,
			Symbol:   t.get(i, "Security Name"),
			Action:   model.Action(capitalize(t.get(i, "Transaction Type"))),
			Quantity: cleanNumber(t.get(i, "Quantity")),
			Price:    cleanNumber(t.get(i, "Market Rate")),
			Exchange: t.get(i, "Exchange"),
			Category: cat,
		}

		// "Total" is the traded value; fall back to qty*rate when the column
		// is absent or blank.
		f.Value = cleanNumber(t.get(i, "Total"))
		if f.Value == 0 {
			f.Value = f.Quantity * f.Price
		}

		if d, ok := parseDate(t.get(i, "Trade Date"), kotakDateLayout); ok {
			f.Date = d
		}
		// Unparseable timestamps stay nil; the fill still groups by date.
		if ts, ok := parseDate(t.get(i, "Trade Date")+" "+t.get(i, "Trade Time"), kotakDateTimeLayout); ok {
			f.Time = &ts
		}

		f.Charges = model.Charges{
			Brokerage: cleanNumber(t.get(i, "Brokerage")),
			GST:       cleanNumber(t.get(i, "GST")),
			STT:       cleanNumber(t.get(i, "STT/CTT")),
			Misc:      cleanNumber(t.get(i, "Misc.")),
			Total:     cleanNumber(t.get(i, "Total Charges")),
		}
		fills = append(fills, f)
	}

	return reconstruct.Pairwise(fills), nil
}
