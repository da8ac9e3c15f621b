// Package report serializes the closed-trade table as the downloadable CSV
// artifact. Reading back a written report reproduces the literal numeric
// values; nothing is re-derived on ingest.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

var header = []string{
	"broker",
	"symbol",
	"entry_date",
	"entry_time",
	"exit_time",
	"quantity",
	"entry_price",
	"exit_price",
	"gross_pnl",
	"brokerage",
	"stt",
	"gst",
	"exchange_charges",
	"stamp_duty",
	"misc_charges",
	"total_charges",
	"net_pnl",
	"holding_period_minutes",
	"trade_type",
	"return_pct",
	"discipline_score",
	"grade",
	"buy_fills",
	"sell_fills",
}

// WriteTrades writes the full trade table, one row per closed trade.
func WriteTrades(w io.Writer, trades []model.ClosedTrade) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			string(t.Broker),
			t.Symbol,
			t.EntryDate.Format("2006-01-02"),
			fmtTime(t.EntryTime),
			fmtTime(t.ExitTime),
			fmtQty(t.Quantity),
			fmtMoney(t.EntryPrice),
			fmtMoney(t.ExitPrice),
			fmtMoney(t.GrossPnL),
			fmtMoney(t.Charges.Brokerage),
			fmtMoney(t.Charges.STT),
			fmtMoney(t.Charges.GST),
			fmtMoney(t.Charges.ExchangeCharges),
			fmtMoney(t.Charges.StampDuty),
			fmtMoney(t.Charges.Misc),
			fmtMoney(t.TotalCharges),
			fmtMoney(t.NetPnL),
			strconv.Itoa(t.HoldingMinutes),
			string(t.TradeType),
			fmtMoney(t.ReturnPct),
			strconv.Itoa(t.DisciplineScore),
			t.Grade,
			strconv.Itoa(t.BuyFills),
			strconv.Itoa(t.SellFills),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteTradesFile writes the report to a new file at path.
func WriteTradesFile(path string, trades []model.ClosedTrade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTrades(f, trades)
}

// ReadTrades parses a previously written report. Values are taken literally;
// P&L and scores are not recomputed.
func ReadTrades(r io.Reader) ([]model.ClosedTrade, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty report")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range header {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("report missing column %q", required)
		}
	}

	trades := make([]model.ClosedTrade, 0, len(records)-1)
	for _, rec := range records[1:] {
		get := func(name string) string { return rec[col[name]] }

		t := model.ClosedTrade{
			Broker:          model.Broker(get("broker")),
			Symbol:          get("symbol"),
			Quantity:        parseFloat(get("quantity")),
			EntryPrice:      parseFloat(get("entry_price")),
			ExitPrice:       parseFloat(get("exit_price")),
			GrossPnL:        parseFloat(get("gross_pnl")),
			TotalCharges:    parseFloat(get("total_charges")),
			NetPnL:          parseFloat(get("net_pnl")),
			TradeType:       model.TradeType(get("trade_type")),
			ReturnPct:       parseFloat(get("return_pct")),
			Grade:           get("grade"),
			Charges: model.Charges{
				Brokerage:       parseFloat(get("brokerage")),
				STT:             parseFloat(get("stt")),
				GST:             parseFloat(get("gst")),
				ExchangeCharges: parseFloat(get("exchange_charges")),
				StampDuty:       parseFloat(get("stamp_duty")),
				Misc:            parseFloat(get("misc_charges")),
				Total:           parseFloat(get("total_charges")),
			},
		}
		t.HoldingMinutes, _ = strconv.Atoi(get("holding_period_minutes"))
		t.DisciplineScore, _ = strconv.Atoi(get("discipline_score"))
		t.BuyFills, _ = strconv.Atoi(get("buy_fills"))
		t.SellFills, _ = strconv.Atoi(get("sell_fills"))
		t.Win = t.NetPnL > 0

		if d, err := time.Parse("2006-01-02", get("entry_date")); err == nil {
			t.EntryDate = d
		}
		if ts, err := time.Parse(time.RFC3339, get("entry_time")); err == nil {
			t.EntryTime = &ts
		}
		if ts, err := time.Parse(time.RFC3339, get("exit_time")); err == nil {
			t.ExitTime = &ts
		}

		trades = append(trades, t)
	}
	return trades, nil
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func fmtQty(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
