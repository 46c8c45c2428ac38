package mopsclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/twmops/revenue-insight-api/internal/domain"
)

// MonthlyRevenueParams identifies one monthly disclosure page and the company
// row to extract from it.
type MonthlyRevenueParams struct {
	CompanyID string
	Year      int
	Month     int
}

// headerRows is the number of leading rows of the disclosure table that carry
// column headings rather than company data.
const headerRows = 2

// fieldsPerRow is the number of leading cells a matching row must carry:
// company id, name, three revenue columns and two change percentages.
const fieldsPerRow = 7

// GetMonthlyRevenue fetches one MOPS monthly revenue page and extracts the
// first row whose company-id column equals params.CompanyID.
//
// The month is not zero padded in the URL, that is the portal's convention.
// A non-2xx status and a missing row are both legitimate "no disclosure"
// outcomes and return (nil, nil); transport failures and pages without any
// table surface as a retryable error.
func (c *MopsClient) GetMonthlyRevenue(ctx context.Context, params MonthlyRevenueParams) (*domain.MonthlyRevenueRecord, error) {
	url := fmt.Sprintf("%s/t21sc03_%d_%d_0.html", c.config.Mops.BaseURL, params.Year, params.Month)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fetchError(params, pkgerrors.Wrap(err, "building request"))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fetchError(params, pkgerrors.Wrap(err, "executing request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Many (company, period) combinations legitimately have no page yet.
		return nil, nil
	}

	// The page body is Big5. Reading it as latin-1 keeps every byte intact as
	// one rune, so the Big5 sequences survive HTML parsing and can be
	// re-decoded per cell afterwards.
	body := charmap.ISO8859_1.NewDecoder().Reader(resp.Body)

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, c.fetchError(params, pkgerrors.Wrap(err, "parsing response HTML"))
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, c.fetchError(params, pkgerrors.New("response contains no table"))
	}

	rows := table.Find("tr")
	if rows.Length() <= headerRows {
		// A table with only heading rows (or a bare notice row) carries no
		// disclosures, same outcome as a page without the company's row.
		return nil, nil
	}

	var record *domain.MonthlyRevenueRecord

	rows.Slice(headerRows, goquery.ToEnd).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}

		if strings.TrimSpace(cells.Eq(0).Text()) != params.CompanyID {
			return true
		}

		if cells.Length() < fieldsPerRow {
			return true
		}

		record = &domain.MonthlyRevenueRecord{
			CompanyID:             strings.TrimSpace(cells.Eq(0).Text()),
			CompanyName:           decodeBig5(strings.TrimSpace(cells.Eq(1).Text())),
			MonthlyRevenue:        strings.TrimSpace(cells.Eq(2).Text()),
			PriorMonthRevenue:     strings.TrimSpace(cells.Eq(3).Text()),
			PriorYearMonthRevenue: strings.TrimSpace(cells.Eq(4).Text()),
			MoMChangePct:          strings.TrimSpace(cells.Eq(5).Text()),
			YoYChangePct:          strings.TrimSpace(cells.Eq(6).Text()),
		}

		// Only the first matching row is ever consulted.
		return false
	})

	return record, nil
}

func (c *MopsClient) fetchError(params MonthlyRevenueParams, err error) error {
	return &FetchError{
		CompanyID: params.CompanyID,
		Year:      params.Year,
		Month:     params.Month,
		Err:       err,
	}
}

// decodeBig5 re-interprets a latin-1 round-tripped cell value as Big5 text.
// Bytes that fail to decode are dropped, never fatal: the record is still
// useful with a partially decoded name.
func decodeBig5(s string) string {
	raw := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			raw = append(raw, byte(r))
		}
	}

	decoded, err := traditionalchinese.Big5.NewDecoder().String(string(raw))
	if err != nil {
		return s
	}

	return strings.ReplaceAll(decoded, "�", "")
}
