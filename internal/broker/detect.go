package broker

import (
	"strings"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// detectSampleRows bounds how much of the file Detect inspects.
const detectSampleRows = 5

// Detect inspects the header row (and a few sample rows) of an uploaded CSV
// and identifies the broker by its column signature, checked in fixed priority
// order. It never fails: anything unreadable or unrecognized reports ok=false,
// deferring to manual broker selection by the caller.
func Detect(data []byte) (model.Broker, model.TradeCategory, bool) {
	t, err := readTable(data)
	if err != nil || len(t.header) == 0 {
		return "", "", false
	}
	if len(t.rows) > detectSampleRows {
		t.rows = t.rows[:detectSampleRows]
	}

	if t.hasLower("symbol", "order_execution_time", "trade_type") {
		return model.BrokerZerodha, model.CategoryEquity, true
	}

	if t.hasLower("trade date", "security name", "transaction type") {
		// Derivatives statements carry contract names like FUTSTK/OPTIDX in
		// the security field; sample the first row to pick the sub-format.
		if len(t.rows) > 0 {
			name := strings.ToUpper(t.get(0, "Security Name"))
			if strings.Contains(name, "FUT") || strings.Contains(name, "OPT") {
				return model.BrokerKotak, model.CategoryDerivatives, true
			}
		}
		return model.BrokerKotak, model.CategoryEquity, true
	}

	if t.hasLower("stock", "order ref.", "settlement") {
		return model.BrokerICICI, model.CategoryEquity, true
	}

	return "", "", false
}
