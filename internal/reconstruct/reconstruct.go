// Package reconstruct pairs normalized buy/sell fills into closed round-trip
// trades. Fills are grouped by (symbol, calendar date); a group missing either
// side is an open or ambiguous position and produces no trade. Only positions
// that close unambiguously are reported.
package reconstruct

import (
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// quantityEpsilon absorbs fractional-share rounding when comparing the buy and
// sell sides of a group.
const quantityEpsilon = 0.01

type group struct {
	symbol string
	date   time.Time
	buys   []model.Fill
	sells  []model.Fill
}

// groupFills buckets fills by (symbol, date), preserving first-appearance
// order of groups and row order within each side.
func groupFills(fills []model.Fill) []*group {
	byKey := make(map[string]*group)
	var ordered []*group

	for _, f := range fills {
		key := f.Symbol + "\x00" + f.Date.Format("2006-01-02")
		g, ok := byKey[key]
		if !ok {
			g = &group{symbol: f.Symbol, date: f.Date}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		switch f.Action {
		case model.ActionBuy:
			g.buys = append(g.buys, f)
		case model.ActionSell:
			g.sells = append(g.sells, f)
		}
	}
	return ordered
}

func earliestTime(fills []model.Fill) *time.Time {
	var min *time.Time
	for i := range fills {
		t := fills[i].Time
		if t == nil {
			continue
		}
		if min == nil || t.Before(*min) {
			min = t
		}
	}
	return min
}

func latestTime(fills []model.Fill) *time.Time {
	var max *time.Time
	for i := range fills {
		t := fills[i].Time
		if t == nil {
			continue
		}
		if max == nil || t.After(*max) {
			max = t
		}
	}
	return max
}

// holdingMinutes is the whole-minute holding period, floored. Zero when either
// timestamp is unavailable.
func holdingMinutes(entry, exit *time.Time) int {
	if entry == nil || exit == nil {
		return 0
	}
	d := exit.Sub(*entry)
	if d < 0 {
		return 0
	}
	return int(d.Minutes())
}

// classify marks a trade Intraday when entry and exit fall on the same
// calendar date. Date-only exports have no timestamps, and since groups are
// already per-date, those trades are Intraday by construction.
func classify(entry, exit *time.Time) model.TradeType {
	if entry == nil || exit == nil {
		return model.TradeIntraday
	}
	ey, em, ed := entry.Date()
	xy, xm, xd := exit.Date()
	if ey == xy && em == xm && ed == xd {
		return model.TradeIntraday
	}
	return model.TradeDelivery
}

func sumCharges(fills ...[]model.Fill) model.Charges {
	var total model.Charges
	for _, side := range fills {
		for _, f := range side {
			total = total.Add(f.Charges)
		}
	}
	return total
}

func roundCharges(c model.Charges) model.Charges {
	return model.Charges{
		Brokerage:       model.Round2(c.Brokerage),
		STT:             model.Round2(c.STT),
		GST:             model.Round2(c.GST),
		ExchangeCharges: model.Round2(c.ExchangeCharges),
		StampDuty:       model.Round2(c.StampDuty),
		Misc:            model.Round2(c.Misc),
		Total:           model.Round2(c.Total),
	}
}
