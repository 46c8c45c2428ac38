package domain

// ReportHeaders lists the presentation columns in source-table order. The
// first seven mirror columns 0..6 of the MOPS table; the period is appended
// last.
var ReportHeaders = []string{
	"公司代號",
	"公司名稱",
	"當月營收",
	"上月營收",
	"去年當月營收",
	"上月比較增減(%)",
	"去年同月增減(%)",
	"月份",
}

// RevenueReport is the aggregated, presentation-ready result of one report
// request. Rows interleave detail rows, one blank separator row per company
// and one summary row per (company, year) with data. YearlyAverages carries
// the same aggregate keyed company -> year -> mean revenue, the shape chart
// consumers need.
type RevenueReport struct {
	Headers        []string                   `json:"headers"`
	Rows           [][]string                 `json:"rows"`
	YearlyAverages map[string]map[int]float64 `json:"yearly_averages"`
	Stats          *CollectionStats           `json:"stats,omitempty"`
}

// RevenueSnapshot is one persisted (company, year) average produced by the
// watchlist sync job.
type RevenueSnapshot struct {
	CompanyID      string  `json:"company_id"`
	CompanyName    string  `json:"company_name"`
	Year           int     `json:"year"`
	AverageRevenue float64 `json:"average_revenue"`
	SampleMonths   int     `json:"sample_months"`
}
