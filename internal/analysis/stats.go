// Package analysis reduces a closed-trade table into portfolio statistics and
// behavioral advisories. Everything here is read-only over the table.
package analysis

import "github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"

// Summarize computes portfolio-level statistics for one file's trades.
// Returns nil when there are no trades; stats have no lifecycle of their own
// and are recomputed whenever the table changes.
func Summarize(trades []model.ClosedTrade) *model.PortfolioStats {
	if len(trades) == 0 {
		return nil
	}

	s := &model.PortfolioStats{TotalTrades: len(trades)}

	var winSum, lossSum float64
	s.LargestWin = trades[0].NetPnL
	s.LargestLoss = trades[0].NetPnL

	var scoreSum float64
	for _, t := range trades {
		s.GrossPnL += t.GrossPnL
		s.TotalCharges += t.TotalCharges
		s.NetPnL += t.NetPnL
		s.TotalBrokerage += t.Charges.Brokerage
		s.TotalSTT += t.Charges.STT
		scoreSum += float64(t.DisciplineScore)

		if t.NetPnL > 0 {
			s.WinningTrades++
			winSum += t.NetPnL
		} else if t.NetPnL < 0 {
			s.LosingTrades++
			lossSum += t.NetPnL
		}
		if t.NetPnL > s.LargestWin {
			s.LargestWin = t.NetPnL
		}
		if t.NetPnL < s.LargestLoss {
			s.LargestLoss = t.NetPnL
		}
	}

	s.WinRate = model.Round1(float64(s.WinningTrades) / float64(s.TotalTrades) * 100)
	if s.WinningTrades > 0 {
		s.AvgWin = winSum / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AvgLoss = lossSum / float64(s.LosingTrades)
	}
	s.AvgDisciplineScore = scoreSum / float64(s.TotalTrades)

	// Profit factor is 0, not infinity, when nothing was lost. Callers should
	// check the trade count before reading it as performance.
	if lossSum < 0 {
		s.ProfitFactor = model.Round2(winSum / -lossSum)
	}

	return s
}
