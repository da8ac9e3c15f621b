package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

func sampleTrades() []model.ClosedTrade {
	entry := time.Date(2024, 6, 3, 9, 20, 11, 0, time.UTC)
	exit := time.Date(2024, 6, 3, 13, 5, 42, 0, time.UTC)
	return []model.ClosedTrade{
		{
			Broker:     model.BrokerZerodha,
			Symbol:     "RELIANCE",
			EntryDate:  time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			EntryTime:  &entry,
			ExitTime:   &exit,
			Quantity:   10,
			EntryPrice: 100,
			ExitPrice:  105,
			GrossPnL:   50,
			Charges: model.Charges{
				Brokerage: 6.15, STT: 10.5, GST: 1.23,
				ExchangeCharges: 0.68, StampDuty: 1.5, Total: 20.06,
			},
			TotalCharges:    20.06,
			NetPnL:          29.94,
			HoldingMinutes:  225,
			TradeType:       model.TradeIntraday,
			ReturnPct:       5.00,
			DisciplineScore: 90,
			Grade:           "A+",
			Win:             true,
			BuyFills:        1,
			SellFills:       1,
		},
		{
			// Date-only broker: no timestamps.
			Broker:          model.BrokerICICI,
			Symbol:          "INFTEC",
			EntryDate:       time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			Quantity:        100,
			EntryPrice:      101,
			ExitPrice:       105,
			GrossPnL:        400,
			TotalCharges:    153.92,
			NetPnL:          246.08,
			TradeType:       model.TradeIntraday,
			ReturnPct:       3.96,
			DisciplineScore: 70,
			Grade:           "B",
			Win:             true,
			BuyFills:        2,
			SellFills:       1,
		},
	}
}

func TestWriteTrades_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, sampleTrades()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "broker,symbol,entry_date,"))
	assert.Contains(t, lines[1], "zerodha,RELIANCE,2024-06-03")
	assert.Contains(t, lines[1], "2024-06-03T09:20:11Z")
	assert.Contains(t, lines[2], "icici,INFTEC,2024-06-04")
}

func TestReadTrades_RoundTrip(t *testing.T) {
	orig := sampleTrades()

	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, orig))

	got, err := ReadTrades(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, orig[0].Broker, got[0].Broker)
	assert.Equal(t, orig[0].Symbol, got[0].Symbol)
	assert.Equal(t, orig[0].Quantity, got[0].Quantity)
	assert.Equal(t, orig[0].EntryPrice, got[0].EntryPrice)
	assert.Equal(t, orig[0].NetPnL, got[0].NetPnL)
	assert.Equal(t, orig[0].HoldingMinutes, got[0].HoldingMinutes)
	assert.Equal(t, orig[0].DisciplineScore, got[0].DisciplineScore)
	assert.Equal(t, orig[0].Grade, got[0].Grade)
	assert.Equal(t, orig[0].Charges, got[0].Charges)
	assert.True(t, got[0].Win)
	require.NotNil(t, got[0].EntryTime)
	assert.True(t, got[0].EntryTime.Equal(*orig[0].EntryTime))

	// Absent timestamps stay absent.
	assert.Nil(t, got[1].EntryTime)
	assert.Nil(t, got[1].ExitTime)
	assert.Equal(t, orig[1].NetPnL, got[1].NetPnL)
}

func TestReadTrades_MissingColumn(t *testing.T) {
	_, err := ReadTrades(strings.NewReader("broker,symbol\nzerodha,RELIANCE\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestWriteTrades_EmptyTableStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, nil))

	got, err := ReadTrades(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}
