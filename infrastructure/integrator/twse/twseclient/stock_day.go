package twseclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"

	pkgerrors "github.com/pkg/errors"

	"github.com/twmops/revenue-insight-api/internal/domain"
	"github.com/twmops/revenue-insight-api/pkg/utils"
)

type DailyQuotesParams struct {
	StockNo string
	Year    int
	Month   int
}

// stockDayResponse mirrors the TWSE STOCK_DAY JSON envelope. Data rows are
// positional string arrays: date, volume, turnover, open, high, low, close,
// change, transactions.
type stockDayResponse struct {
	Stat   string     `json:"stat"`
	Date   string     `json:"date"`
	Title  string     `json:"title"`
	Fields []string   `json:"fields"`
	Data   [][]string `json:"data"`
}

const stockDayColumns = 9

// GetDailyQuotes fetches one month of daily quotes for a stock. A response
// with stat other than "OK" means the exchange has no data for the requested
// month and yields an empty series, not an error.
func (c *TwseClient) GetDailyQuotes(ctx context.Context, params DailyQuotesParams) ([]domain.DailyQuote, error) {
	endpoint, err := url.Parse(c.config.Twse.BaseURL)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "parsing TWSE base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "/exchangeReport/STOCK_DAY")

	query := endpoint.Query()
	query.Set("response", "json")
	query.Set("date", fmt.Sprintf("%04d%02d01", params.Year, params.Month))
	query.Set("stockNo", params.StockNo)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "executing request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.Errorf("request failed with status: %s", resp.Status)
	}

	var payload stockDayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding response")
	}

	if payload.Stat != "OK" {
		return []domain.DailyQuote{}, nil
	}

	quotes := make([]domain.DailyQuote, 0, len(payload.Data))
	for _, row := range payload.Data {
		if len(row) < stockDayColumns {
			continue
		}

		quotes = append(quotes, domain.DailyQuote{
			Date:         row[0],
			Volume:       parseQuoteNumber(row[1]),
			Turnover:     parseQuoteNumber(row[2]),
			Open:         parseQuoteNumber(row[3]),
			High:         parseQuoteNumber(row[4]),
			Low:          parseQuoteNumber(row[5]),
			Close:        parseQuoteNumber(row[6]),
			Change:       row[7],
			Transactions: parseQuoteNumber(row[8]),
		})
	}

	return quotes, nil
}

// parseQuoteNumber tolerates the exchange's "--" placeholder for halted
// trading days, mapping it to zero.
func parseQuoteNumber(s string) float64 {
	v, err := utils.ParseGroupedNumber(s)
	if err != nil {
		return 0
	}
	return v
}
