package handlers

import (
	"sort"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/models"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

// applyFilter narrows and orders a copy of the trade table. The stored
// analysis is never mutated.
func applyFilter(trades []model.ClosedTrade, f models.TradeFilter) []model.ClosedTrade {
	out := make([]model.ClosedTrade, 0, len(trades))
	for _, t := range trades {
		if !matchResult(t, f.Result) || !matchGrade(t, f.Grade) {
			continue
		}
		out = append(out, t)
	}

	switch f.Sort {
	case "date":
		sort.SliceStable(out, func(i, j int) bool { return out[j].EntryDate.Before(out[i].EntryDate) })
	case "pnl":
		sort.SliceStable(out, func(i, j int) bool { return out[i].NetPnL > out[j].NetPnL })
	case "-pnl":
		sort.SliceStable(out, func(i, j int) bool { return out[i].NetPnL < out[j].NetPnL })
	case "score":
		sort.SliceStable(out, func(i, j int) bool { return out[i].DisciplineScore > out[j].DisciplineScore })
	}
	return out
}

func matchResult(t model.ClosedTrade, result string) bool {
	switch result {
	case "winners":
		return t.NetPnL > 0
	case "losers":
		return t.NetPnL < 0
	default:
		return true
	}
}

func matchGrade(t model.ClosedTrade, grade string) bool {
	s := t.DisciplineScore
	switch grade {
	case "a":
		return s >= 80
	case "b":
		return s >= 60 && s < 80
	case "c":
		return s >= 50 && s < 60
	case "df":
		return s < 50
	default:
		return true
	}
}
