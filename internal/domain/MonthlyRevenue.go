package domain

import "fmt"

// FetchTarget identifies one (company, year, month) combination to resolve
// into zero or one revenue record.
type FetchTarget struct {
	CompanyID string
	Year      int
	Month     int
}

// Period renders the target's disclosure window as "YYYY-MM"
func (t FetchTarget) Period() string {
	return fmt.Sprintf("%d-%02d", t.Year, t.Month)
}

// MonthlyRevenueRecord is one company's revenue disclosure for one period.
// Revenue fields keep the raw formatted numerals from the source table and
// are only converted to numbers at aggregation time.
type MonthlyRevenueRecord struct {
	CompanyID             string `json:"company_id"`
	CompanyName           string `json:"company_name"`
	MonthlyRevenue        string `json:"monthly_revenue"`
	PriorMonthRevenue     string `json:"prior_month_revenue"`
	PriorYearMonthRevenue string `json:"prior_year_month_revenue"`
	MoMChangePct          string `json:"mom_change_pct"`
	YoYChangePct          string `json:"yoy_change_pct"`
	Period                string `json:"period"` // "YYYY-MM", stamped by the collector
}

// RevenueQuery is one report request after input parsing: an ordered list of
// company ids and the expanded year/month enumerations.
type RevenueQuery struct {
	CompanyIDs []string `json:"company_ids"`
	Years      []int    `json:"years"`
	Months     []int    `json:"months"`

	// IncludeEmptyYears widens the summary-row candidate years from "years
	// with data" to the full requested year range. Years without any record
	// are still skipped when averaging.
	IncludeEmptyYears bool `json:"include_empty_years,omitempty"`
}

// TotalCombinations is the expected number of fetch attempts for the query
func (q RevenueQuery) TotalCombinations() int {
	return len(q.CompanyIDs) * len(q.Years) * len(q.Months)
}

// CollectionStats summarizes one collection run over the query cross product
type CollectionStats struct {
	TotalCombinations int `json:"total_combinations"`
	Collected         int `json:"collected"`
	Missing           int `json:"missing"`
	Failed            int `json:"failed"`
}
