package twseclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twmops/revenue-insight-api/internal/config"
)

const stockDayPayload = `{
	"stat": "OK",
	"date": "20240101",
	"title": "113年01月 0050 各日成交資訊",
	"fields": ["日期","成交股數","成交金額","開盤價","最高價","最低價","收盤價","漲跌價差","成交筆數"],
	"data": [
		["113/01/02","8,441,189","1,130,007,840","133.30","134.45","133.30","134.40","+1.60","11,166"],
		["113/01/03","12,493,457","1,662,198,261","133.35","133.50","132.55","132.85","-1.55","16,019"]
	]
}`

func newTestClient(baseURL string) *TwseClient {
	cfg := &config.Config{}
	cfg.Twse.BaseURL = baseURL
	cfg.Twse.RequestTimeoutSecs = 5

	return NewClient(cfg).(*TwseClient)
}

func TestGetDailyQuotes(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stockDayPayload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	quotes, err := client.GetDailyQuotes(context.Background(), DailyQuotesParams{
		StockNo: "0050",
		Year:    2024,
		Month:   1,
	})

	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Contains(t, gotQuery, "stockNo=0050")
	assert.Contains(t, gotQuery, "date=20240101")

	first := quotes[0]
	assert.Equal(t, "113/01/02", first.Date)
	assert.Equal(t, 8441189.0, first.Volume)
	assert.Equal(t, 133.30, first.Open)
	assert.Equal(t, 134.45, first.High)
	assert.Equal(t, 133.30, first.Low)
	assert.Equal(t, 134.40, first.Close)
	assert.Equal(t, "+1.60", first.Change)
	assert.Equal(t, 11166.0, first.Transactions)
}

func TestGetDailyQuotes_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stat":"很抱歉，沒有符合條件的資料!"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	quotes, err := client.GetDailyQuotes(context.Background(), DailyQuotesParams{
		StockNo: "0050",
		Year:    1980,
		Month:   1,
	})

	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestGetDailyQuotes_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetDailyQuotes(context.Background(), DailyQuotesParams{
		StockNo: "0050",
		Year:    2024,
		Month:   1,
	})

	assert.Error(t, err)
}
