package model

import "time"

// Broker identifies a supported tradebook source.
type Broker string

const (
	BrokerZerodha Broker = "zerodha"
	BrokerKotak   Broker = "kotak"
	BrokerICICI   Broker = "icici"
)

// DisplayName returns the broker name used in reports.
func (b Broker) DisplayName() string {
	switch b {
	case BrokerZerodha:
		return "Zerodha"
	case BrokerKotak:
		return "Kotak Securities"
	case BrokerICICI:
		return "ICICI Direct"
	}
	return string(b)
}

// Action is the side of a fill.
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
)

// TradeCategory distinguishes the Kotak equity and derivatives statements.
type TradeCategory string

const (
	CategoryEquity      TradeCategory = "equity"
	CategoryDerivatives TradeCategory = "derivatives"
)

// Charges is the per-fill cost breakdown. Fields a broker does not report are zero.
type Charges struct {
	Brokerage       float64
	STT             float64
	GST             float64
	ExchangeCharges float64
	StampDuty       float64
	Misc            float64
	Total           float64
}

// Add returns the field-wise sum of two charge breakdowns.
func (c Charges) Add(o Charges) Charges {
	return Charges{
		Brokerage:       c.Brokerage + o.Brokerage,
		STT:             c.STT + o.STT,
		GST:             c.GST + o.GST,
		ExchangeCharges: c.ExchangeCharges + o.ExchangeCharges,
		StampDuty:       c.StampDuty + o.StampDuty,
		Misc:            c.Misc + o.Misc,
		Total:           c.Total + o.Total,
	}
}

// Fill is one executed buy or sell row after normalization, possibly a partial
// execution of a larger order.
type Fill struct {
	Broker Broker
	Symbol string
	Action Action

	Quantity float64
	Price    float64
	Value    float64

	// Date is the trade's calendar date, always set (grouping key).
	// Time is the execution timestamp; nil when the broker's export has no
	// time-of-day or the value failed to parse.
	Date time.Time
	Time *time.Time

	Charges Charges

	// Exchange and Category are only populated by brokers whose exports
	// carry them (Kotak).
	Exchange string
	Category TradeCategory
}
