package analysis

import (
	"fmt"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

const (
	// Fewer trades than this carries no behavioral signal.
	minTradesForPatterns = 5

	// Overtrading is only judged on a meaningful sample.
	overtradingMinTrades  = 50
	overtradingPerDayMax  = 5.0
	losingStreakThreshold = 5

	mismatchWinRateMin      = 60.0
	mismatchProfitFactorMax = 1.0
)

// DetectPatterns scans a closed-trade table for behavioral patterns. The
// checks are independent and any number may fire. The losing-streak scan
// walks trades in the order given, so callers must pass trades sorted by
// entry date for the streak to be chronological.
func DetectPatterns(trades []model.ClosedTrade) []model.Pattern {
	var patterns []model.Pattern
	if len(trades) < minTradesForPatterns {
		return patterns
	}

	if len(trades) > overtradingMinTrades {
		days := make(map[string]struct{})
		for _, t := range trades {
			days[t.EntryDate.Format("2006-01-02")] = struct{}{}
		}
		perDay := float64(len(trades)) / float64(len(days))
		if perDay > overtradingPerDayMax {
			patterns = append(patterns, model.Pattern{
				Type:     "warning",
				Title:    "Possible Overtrading",
				Message:  fmt.Sprintf("Average %.1f trades per day. Consider reducing frequency.", perDay),
				Severity: model.SeverityMedium,
			})
		}
	}

	streak, maxStreak := 0, 0
	for _, t := range trades {
		if t.NetPnL < 0 {
			streak++
			if streak > maxStreak {
				maxStreak = streak
			}
		} else {
			streak = 0
		}
	}
	if maxStreak >= losingStreakThreshold {
		patterns = append(patterns, model.Pattern{
			Type:     "danger",
			Title:    "Long Losing Streak Detected",
			Message:  fmt.Sprintf("You had %d consecutive losses. Take a break after 3 losses.", maxStreak),
			Severity: model.SeverityHigh,
		})
	}

	if stats := Summarize(trades); stats != nil &&
		stats.WinRate > mismatchWinRateMin && stats.ProfitFactor < mismatchProfitFactorMax {
		patterns = append(patterns, model.Pattern{
			Type:  "warning",
			Title: "Cutting Winners, Letting Losers Run",
			Message: fmt.Sprintf("Win rate is %.0f%% but profit factor is %.2f. Your losses are bigger than wins.",
				stats.WinRate, stats.ProfitFactor),
			Severity: model.SeverityHigh,
		})
	}

	return patterns
}
