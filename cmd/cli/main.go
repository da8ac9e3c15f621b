package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/broker"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/pipeline"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "detect":
		cmdDetect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --file tradebook.csv [--broker zerodha|kotak|icici] [--type equity|derivatives] [--out report.csv]")
	fmt.Println("  cli detect --file tradebook.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - broker is auto-detected from the CSV header when omitted")
	fmt.Println("  - --type only matters for Kotak statements")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to the broker's tradebook CSV")
	brokerName := fs.String("broker", "", "Broker: zerodha, kotak or icici (default: auto-detect)")
	tradeType := fs.String("type", "equity", "Kotak statement type: equity or derivatives")
	outPath := fs.String("out", "", "Optional: write the full report CSV here")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		fatal(err)
	}

	engine := pipeline.New(nil)
	result, err := engine.Run(raw, model.Broker(*brokerName), model.TradeCategory(*tradeType))
	if err != nil {
		fatal(err)
	}

	printSummary(result)

	if *outPath != "" {
		if err := report.WriteTradesFile(*outPath, result.Trades); err != nil {
			fatal(err)
		}
		fmt.Printf("\nreport written to %s\n", *outPath)
	}
}

func cmdDetect(args []string) {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	filePath := fs.String("file", "", "Path to the broker's tradebook CSV")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		fatal(err)
	}

	b, cat, ok := broker.Detect(raw)
	if !ok {
		fmt.Println("unknown format; select a broker manually with --broker")
		os.Exit(1)
	}
	fmt.Printf("detected: %s (%s)\n", b.DisplayName(), cat)
}

func printSummary(r *pipeline.Result) {
	s := r.Stats
	fmt.Printf("broker:          %s (%s)\n", r.Broker.DisplayName(), r.TradeCategory)
	fmt.Printf("total trades:    %d (%d wins, %d losses)\n", s.TotalTrades, s.WinningTrades, s.LosingTrades)
	fmt.Printf("win rate:        %.1f%%\n", s.WinRate)
	fmt.Printf("gross P&L:       %.2f\n", s.GrossPnL)
	fmt.Printf("total charges:   %.2f", s.TotalCharges)
	if r.ChargesEstimated {
		fmt.Printf(" (estimated)")
	}
	fmt.Println()
	fmt.Printf("net P&L:         %.2f\n", s.NetPnL)
	fmt.Printf("profit factor:   %.2f\n", s.ProfitFactor)
	fmt.Printf("avg discipline:  %.1f/100\n", s.AvgDisciplineScore)

	if len(r.Patterns) > 0 {
		fmt.Println("\npatterns:")
		for _, p := range r.Patterns {
			fmt.Printf("  [%s] %s: %s\n", p.Severity, p.Title, p.Message)
		}
	}
	if len(r.Recommendations) > 0 {
		fmt.Println("\nrecommendations:")
		for _, p := range r.Recommendations {
			fmt.Printf("  %s: %s\n", p.Title, p.Message)
		}
	}

	n := len(r.Trades)
	if n > 3 {
		n = 3
	}
	fmt.Println("\nsample trades:")
	for _, t := range r.Trades[:n] {
		fmt.Printf("  %s %s: entry %.2f x %.0f, exit %.2f, net %.2f, score %d (%s)\n",
			t.EntryDate.Format("2006-01-02"), t.Symbol,
			t.EntryPrice, t.Quantity, t.ExitPrice, t.NetPnL, t.DisciplineScore, t.Grade)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
