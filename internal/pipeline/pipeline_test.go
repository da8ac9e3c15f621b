package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/broker"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/model"
)

const zerodhaCSV = "symbol,trade_date,trade_type,quantity,price,order_execution_time\n" +
	"TCS,2024-06-05,buy,5,3850.00,2024-06-05T10:01:00\n" +
	"TCS,2024-06-05,sell,5,3818.25,2024-06-05T10:03:30\n" +
	"RELIANCE,2024-06-03,buy,10,2900.00,2024-06-03T09:20:11\n" +
	"RELIANCE,2024-06-03,sell,10,2945.50,2024-06-03T13:05:42\n" +
	"INFY,2024-06-04,buy,20,1500.00,2024-06-04T09:30:00\n" +
	"INFY,2024-06-04,sell,20,1524.80,2024-06-04T15:10:05\n"

func TestRun_AutoDetectZerodha(t *testing.T) {
	result, err := New(nil).Run([]byte(zerodhaCSV), "", "")
	require.NoError(t, err)

	assert.Equal(t, model.BrokerZerodha, result.Broker)
	assert.Equal(t, model.CategoryEquity, result.TradeCategory)
	assert.True(t, result.ChargesEstimated)
	require.Len(t, result.Trades, 3)
	require.NotNil(t, result.Stats)
	assert.Equal(t, 3, result.Stats.TotalTrades)

	// Every trade is fully scored.
	for _, tr := range result.Trades {
		assert.NotEmpty(t, tr.Grade)
		assert.GreaterOrEqual(t, tr.DisciplineScore, 0)
		assert.LessOrEqual(t, tr.DisciplineScore, 100)
	}
}

func TestRun_TradesSortedByEntryDate(t *testing.T) {
	// Input rows lead with June 5; output is chronological.
	result, err := New(nil).Run([]byte(zerodhaCSV), "", "")
	require.NoError(t, err)
	require.Len(t, result.Trades, 3)

	assert.Equal(t, "RELIANCE", result.Trades[0].Symbol)
	assert.Equal(t, "INFY", result.Trades[1].Symbol)
	assert.Equal(t, "TCS", result.Trades[2].Symbol)
}

func TestRun_ExplicitBrokerSkipsDetection(t *testing.T) {
	result, err := New(nil).Run([]byte(zerodhaCSV), model.BrokerZerodha, "")
	require.NoError(t, err)
	assert.Equal(t, model.BrokerZerodha, result.Broker)
}

func TestRun_UnknownFormat(t *testing.T) {
	_, err := New(nil).Run([]byte("a,b,c\n1,2,3\n"), "", "")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRun_NoCompleteTrades(t *testing.T) {
	data := "symbol,trade_date,trade_type,quantity,price,order_execution_time\n" +
		"RELIANCE,2024-06-03,buy,10,2900.00,2024-06-03T09:20:11\n"

	_, err := New(nil).Run([]byte(data), "", "")
	require.ErrorIs(t, err, broker.ErrNoCompleteTrades)
}

func TestRun_WrongBrokerSelected(t *testing.T) {
	// Zerodha data forced through the ICICI parser: a format error, not a
	// silent empty result.
	_, err := New(nil).Run([]byte(zerodhaCSV), model.BrokerICICI, "")
	require.Error(t, err)

	var fe *broker.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, model.BrokerICICI, fe.Broker)
}

func TestRun_KotakEndToEnd(t *testing.T) {
	data := "Trade Date,Trade Time,Exchange,Security Name,Transaction Type,Quantity,Market Rate,Total,Total Charges,Brokerage,GST,STT/CTT,Misc.\n" +
		"01/07/2024,09:30:00,NSE,TATA STEEL,Buy,100,150.00,15000.00,25.50,20.00,3.60,1.50,0.40\n" +
		"01/07/2024,14:15:00,NSE,TATA STEEL,Sell,100,155.00,15500.00,26.00,20.00,3.70,1.80,0.50\n"

	result, err := New(nil).Run([]byte(data), "", "")
	require.NoError(t, err)

	assert.Equal(t, model.BrokerKotak, result.Broker)
	assert.False(t, result.ChargesEstimated, "kotak statements carry real charges")
	require.Len(t, result.Trades, 1)
	assert.Equal(t, 448.50, result.Trades[0].NetPnL)
}
