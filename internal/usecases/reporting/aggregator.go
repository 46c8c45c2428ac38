package reporting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/internal/domain"
	"github.com/twmops/revenue-insight-api/pkg/utils"
)

// revenueColumn is the row position of the monthly revenue value, and the
// cell a summary row places its computed mean in.
const revenueColumn = 2

// periodColumn is the last row position, carrying the period on detail rows
// and the year label on summary rows.
const periodColumn = 7

// Aggregate turns a collected record sequence into the presentation table:
// records sorted by (company, period), grouped per company, each group's
// detail rows followed by one blank separator row and one yearly-average
// summary row per year with data. Output is independent of input order.
func Aggregate(records []*domain.MonthlyRevenueRecord, query domain.RevenueQuery) *domain.RevenueReport {
	sorted := make([]*domain.MonthlyRevenueRecord, len(records))
	copy(sorted, records)

	// Lexicographic order on the zero-padded period string is chronological
	// order, and company id as primary key is what makes the grouping below
	// correct: a group is a maximal run of equal ids.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CompanyID != sorted[j].CompanyID {
			return sorted[i].CompanyID < sorted[j].CompanyID
		}
		return sorted[i].Period < sorted[j].Period
	})

	report := &domain.RevenueReport{
		Headers:        domain.ReportHeaders,
		Rows:           make([][]string, 0, len(sorted)),
		YearlyAverages: make(map[string]map[int]float64),
	}

	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].CompanyID == sorted[start].CompanyID {
			end++
		}

		aggregateGroup(report, sorted[start:end], query)
		start = end
	}

	return report
}

// aggregateGroup emits one company's detail rows, separator and summary rows.
// The yearly accumulator is freshly scoped per group, it never leaks data
// across companies.
func aggregateGroup(report *domain.RevenueReport, group []*domain.MonthlyRevenueRecord, query domain.RevenueQuery) {
	companyID := group[0].CompanyID

	for _, record := range group {
		report.Rows = append(report.Rows, []string{
			record.CompanyID,
			record.CompanyName,
			record.MonthlyRevenue,
			record.PriorMonthRevenue,
			record.PriorYearMonthRevenue,
			record.MoMChangePct,
			record.YoYChangePct,
			record.Period,
		})
	}

	// Blank separator between companies, same width as the detail rows.
	report.Rows = append(report.Rows, make([]string, len(domain.ReportHeaders)))

	yearlyRevenues := make(map[int][]decimal.Decimal)

	for _, record := range group {
		year, err := yearOfPeriod(record.Period)
		if err != nil {
			logrus.WithField("period", record.Period).Warn("record with unparseable period excluded from averages")
			continue
		}

		value, err := utils.ParseGroupedNumber(record.MonthlyRevenue)
		if err != nil {
			logrus.WithError(ErrMalformedRecord).WithFields(logrus.Fields{
				"company_id": companyID,
				"period":     record.Period,
				"revenue":    record.MonthlyRevenue,
			}).Warn("record excluded from yearly average")
			continue
		}

		yearlyRevenues[year] = append(yearlyRevenues[year], decimal.NewFromFloat(value))
	}

	for _, year := range summaryYears(yearlyRevenues, query) {
		revenues := yearlyRevenues[year]
		if len(revenues) == 0 {
			// Years without a single contributing record are skipped, there
			// is nothing meaningful to divide.
			continue
		}

		average := decimal.Sum(revenues[0], revenues[1:]...).
			Div(decimal.NewFromInt(int64(len(revenues))))

		summary := make([]string, len(domain.ReportHeaders))
		summary[revenueColumn] = average.StringFixed(2)
		summary[periodColumn] = fmt.Sprintf("%d年 平均值", year)
		report.Rows = append(report.Rows, summary)

		if report.YearlyAverages[companyID] == nil {
			report.YearlyAverages[companyID] = make(map[int]float64)
		}
		report.YearlyAverages[companyID][year] = utils.RoundWithTwoDecimalPlace(average.InexactFloat64())
	}
}

// summaryYears decides which years are summary-row candidates for a group:
// by default the years the group actually has data for, or the full requested
// year range when the query asks for it. Ascending either way.
func summaryYears(yearlyRevenues map[int][]decimal.Decimal, query domain.RevenueQuery) []int {
	var years []int

	if query.IncludeEmptyYears {
		seen := make(map[int]bool, len(query.Years))
		for _, year := range query.Years {
			if !seen[year] {
				seen[year] = true
				years = append(years, year)
			}
		}
	} else {
		for year := range yearlyRevenues {
			years = append(years, year)
		}
	}

	sort.Ints(years)
	return years
}

func yearOfPeriod(period string) (int, error) {
	idx := strings.Index(period, "-")
	if idx <= 0 {
		return 0, fmt.Errorf("malformed period %q", period)
	}
	return strconv.Atoi(period[:idx])
}
