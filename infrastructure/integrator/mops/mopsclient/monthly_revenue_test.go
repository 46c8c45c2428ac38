package mopsclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twmops/revenue-insight-api/internal/config"
)

// big5TSMC is "台積電" in Big5, the encoding the disclosure pages are
// served in.
const big5TSMC = "\xa5\x78\xbf\x6e\xb9\x71"

const disclosurePage = `<html><body>
<table border="1">
<tr><td colspan="7">title row</td></tr>
<tr><td>公司代號</td><td>公司名稱</td><td>當月營收</td><td>上月營收</td><td>去年當月營收</td><td>上月比較增減(%)</td><td>去年同月增減(%)</td></tr>
<tr><td> 1101 </td><td>cement co</td><td>9,000</td><td>8,500</td><td>8,000</td><td>5.88</td><td>12.50</td></tr>
<tr><td> 2330 </td><td> ` + big5TSMC + ` </td><td> 1,234,567 </td><td> 1,100,000 </td><td> 1,000,000 </td><td> 12.23 </td><td> 23.46 </td></tr>
<tr><td> 2330 </td><td>duplicate later row</td><td>999</td><td>999</td><td>999</td><td>0</td><td>0</td></tr>
</table>
</body></html>`

func newTestClient(baseURL string) *MopsClient {
	cfg := &config.Config{}
	cfg.Mops.BaseURL = baseURL
	cfg.Mops.RequestTimeoutSecs = 5

	return NewClient(cfg).(*MopsClient)
}

func TestGetMonthlyRevenue_ExtractsFirstMatchingRow(t *testing.T) {
	var requestedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(disclosurePage))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
		CompanyID: "2330",
		Year:      2023,
		Month:     7,
	})

	require.NoError(t, err)
	require.NotNil(t, record)

	// Month is not zero padded in the resource address
	assert.Equal(t, "/t21sc03_2023_7_0.html", requestedPath)

	assert.Equal(t, "2330", record.CompanyID)
	assert.Equal(t, "台積電", record.CompanyName)
	assert.Equal(t, "1,234,567", record.MonthlyRevenue)
	assert.Equal(t, "1,100,000", record.PriorMonthRevenue)
	assert.Equal(t, "1,000,000", record.PriorYearMonthRevenue)
	assert.Equal(t, "12.23", record.MoMChangePct)
	assert.Equal(t, "23.46", record.YoYChangePct)

	// Only the first matching row is consulted, the duplicate is ignored
	assert.NotEqual(t, "999", record.MonthlyRevenue)

	// The period is the collector's job, not the extractor's
	assert.Empty(t, record.Period)
}

func TestGetMonthlyRevenue_NoMatchingRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(disclosurePage))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
		CompanyID: "9999",
		Year:      2023,
		Month:     7,
	})

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetMonthlyRevenue_TableShorterThanHeadingsIsSoftFail(t *testing.T) {
	pages := []string{
		`<html><body><table><tr><td>查無資料</td></tr></table></body></html>`,
		`<html><body><table></table></body></html>`,
	}

	for _, page := range pages {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(page))
		}))

		client := newTestClient(server.URL)

		record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
			CompanyID: "2330",
			Year:      2023,
			Month:     7,
		})

		assert.NoError(t, err)
		assert.Nil(t, record)

		server.Close()
	}
}

func TestGetMonthlyRevenue_NotFoundIsSoftFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
		CompanyID: "2330",
		Year:      1990,
		Month:     1,
	})

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetMonthlyRevenue_MissingTableIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>maintenance window</body></html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
		CompanyID: "2330",
		Year:      2023,
		Month:     7,
	})

	assert.Nil(t, record)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.Retryable())
	assert.Equal(t, "2330", fetchErr.CompanyID)
}

func TestGetMonthlyRevenue_ConnectionFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL)

	record, err := client.GetMonthlyRevenue(context.Background(), MonthlyRevenueParams{
		CompanyID: "2330",
		Year:      2023,
		Month:     7,
	})

	assert.Nil(t, record)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.Retryable())
}
