package main

import (
	"fmt"
	"strings"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/pipeline"
)

// A small synthetic Zerodha tradebook: two intraday round trips and one
// delivery-style pair, enough to exercise detection, reconstruction, charge
// estimation and scoring end to end.
var demoTradebook = strings.Join([]string{
	"symbol,isin,trade_date,exchange,segment,series,trade_type,auction,quantity,price,trade_id,order_id,order_execution_time",
	"RELIANCE,INE002A01018,2024-06-03,NSE,EQ,EQ,buy,false,10,2900.00,T1,O1,2024-06-03T09:20:11",
	"RELIANCE,INE002A01018,2024-06-03,NSE,EQ,EQ,sell,false,10,2945.50,T2,O2,2024-06-03T13:05:42",
	"TCS,INE467B01029,2024-06-03,NSE,EQ,EQ,buy,false,5,3850.00,T3,O3,2024-06-03T10:01:00",
	"TCS,INE467B01029,2024-06-03,NSE,EQ,EQ,sell,false,5,3818.25,T4,O4,2024-06-03T10:03:30",
	"INFY,INE009A01021,2024-06-04,NSE,EQ,EQ,buy,false,20,1500.00,T5,O5,2024-06-04T09:30:00",
	"INFY,INE009A01021,2024-06-04,NSE,EQ,EQ,sell,false,20,1524.80,T6,O6,2024-06-04T15:10:05",
}, "\n")

func main() {
	fmt.Println("=== Trade Audit Demo ===")
	fmt.Println()

	engine := pipeline.New(nil)
	result, err := engine.Run([]byte(demoTradebook), "", "")
	if err != nil {
		fmt.Println("demo failed:", err)
		return
	}

	fmt.Printf("detected broker: %s (%s)\n", result.Broker.DisplayName(), result.TradeCategory)
	fmt.Println()

	fmt.Println("closed trades:")
	for _, t := range result.Trades {
		fmt.Printf("  %s  %-9s qty %-4.0f entry %8.2f exit %8.2f  gross %8.2f  charges %6.2f  net %8.2f  %s  score %d (%s)\n",
			t.EntryDate.Format("2006-01-02"), t.Symbol, t.Quantity,
			t.EntryPrice, t.ExitPrice, t.GrossPnL, t.TotalCharges, t.NetPnL,
			t.TradeType, t.DisciplineScore, t.Grade)
	}
	fmt.Println()

	s := result.Stats
	fmt.Printf("win rate %.1f%%, gross %.2f, charges %.2f (estimated), net %.2f\n",
		s.WinRate, s.GrossPnL, s.TotalCharges, s.NetPnL)
	fmt.Printf("avg discipline score: %.1f/100\n", s.AvgDisciplineScore)

	for _, p := range result.Patterns {
		fmt.Printf("pattern: [%s] %s\n", p.Severity, p.Message)
	}
	for _, p := range result.Recommendations {
		fmt.Printf("tip: %s\n", p.Message)
	}

	printScoreBreakdown(result.Trades)
}

// printScoreBreakdown shows how one trade's score decomposes, the same way a
// user would see it in the report.
func printScoreBreakdown(trades []model.ClosedTrade) {
	if len(trades) == 0 {
		return
	}
	t := trades[0]
	fmt.Println()
	fmt.Printf("first trade detail: %s\n", t.Symbol)
	fmt.Printf("  held %d minutes, notional %.2f, return %.2f%%\n",
		t.HoldingMinutes, t.Notional(), t.ReturnPct)
	fmt.Printf("  brokerage %.2f, stt %.2f, gst %.2f, exchange %.2f, stamp %.2f\n",
		t.Charges.Brokerage, t.Charges.STT, t.Charges.GST,
		t.Charges.ExchangeCharges, t.Charges.StampDuty)
}
