package broker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// ErrNoCompleteTrades is returned when a file parses cleanly but no round-trip
// trades can be reconstructed (everything open or unbalanced).
var ErrNoCompleteTrades = errors.New("no complete trades found in file")

// FormatError means the file does not match the selected broker's export
// format: required columns are missing, or a lower-level read failed. Analysis
// aborts for the file; no partial table is returned.
type FormatError struct {
	Broker  model.Broker
	Missing []string
	Err     error
}

func (e *FormatError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid %s format: missing required columns: %s",
			e.Broker.DisplayName(), strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("error parsing %s file: %v", e.Broker.DisplayName(), e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseFile routes raw CSV bytes to the broker's normalizer and returns the
// reconstructed closed trades. tradeCategory is only meaningful for Kotak.
func ParseFile(data []byte, b model.Broker, cat model.TradeCategory) ([]model.ClosedTrade, error) {
	switch b {
	case model.BrokerZerodha:
		return ParseZerodha(data)
	case model.BrokerKotak:
		return ParseKotak(data, cat)
	case model.BrokerICICI:
		return ParseICICI(data)
	default:
		return nil, fmt.Errorf("unsupported broker: %s", b)
	}
}

// ChargesEstimated reports whether the broker's charges are computed from
// fixed percentage formulas rather than copied from the export. Estimated
// charges are approximate and must be presented as such.
func ChargesEstimated(b model.Broker) bool {
	return b == model.BrokerZerodha
}

// SupportedBrokers lists selectable broker formats for manual selection when
// auto-detection fails.
func SupportedBrokers() map[string]string {
	return map[string]string{
		"zerodha":           "Zerodha (Equity Tradebook)",
		"kotak_equity":      "Kotak Securities (Equity)",
		"kotak_derivatives": "Kotak Securities (Derivatives)",
		"icici":             "ICICI Direct (Equity Orderbook)",
	}
}
