package analysis

import (
	"fmt"
	"math"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

const (
	lowWinRate          = 40.0
	lowAvgScore         = 60.0
	highChargesOfPnLPct = 0.5
)

// Recommend derives coaching advisories from the aggregate stats. These are
// informational, lower urgency than detected patterns, and never block a run.
func Recommend(stats *model.PortfolioStats) []model.Pattern {
	var recs []model.Pattern
	if stats == nil {
		return recs
	}

	if stats.WinRate < lowWinRate {
		recs = append(recs, model.Pattern{
			Type:     "info",
			Title:    "Improve Win Rate",
			Message:  fmt.Sprintf("Win rate is %.1f%%, below 40%%. Focus on entry quality and wait for better setups.", stats.WinRate),
			Severity: model.SeverityLow,
		})
	}

	if stats.ProfitFactor < 1 && stats.LosingTrades > 0 {
		recs = append(recs, model.Pattern{
			Type:     "warning",
			Title:    "Negative Profit Factor",
			Message:  fmt.Sprintf("Profit factor is %.2f: losses outweigh wins. Tighten stop losses and let winners run.", stats.ProfitFactor),
			Severity: model.SeverityLow,
		})
	}

	if stats.AvgDisciplineScore < lowAvgScore {
		recs = append(recs, model.Pattern{
			Type:     "info",
			Title:    "Work on Discipline",
			Message:  fmt.Sprintf("Average discipline score is %.0f/100. Follow a written plan and journal every trade.", stats.AvgDisciplineScore),
			Severity: model.SeverityLow,
		})
	}

	if stats.TotalBrokerage > math.Abs(stats.NetPnL)*highChargesOfPnLPct && stats.TotalBrokerage > 0 {
		recs = append(recs, model.Pattern{
			Type:     "warning",
			Title:    "High Brokerage Costs",
			Message:  "Charges exceed half of net P&L. Reduce trading frequency or focus on higher timeframe trades.",
			Severity: model.SeverityLow,
		})
	}

	return recs
}
