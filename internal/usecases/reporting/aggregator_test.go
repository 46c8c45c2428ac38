package reporting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twmops/revenue-insight-api/internal/domain"
)

func record(companyID, name, revenue, period string) *domain.MonthlyRevenueRecord {
	return &domain.MonthlyRevenueRecord{
		CompanyID:             companyID,
		CompanyName:           name,
		MonthlyRevenue:        revenue,
		PriorMonthRevenue:     "1,000",
		PriorYearMonthRevenue: "2,000",
		MoMChangePct:          "1.5",
		YoYChangePct:          "-0.5",
		Period:                period,
	}
}

func TestAggregate_YearlyAverages(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2330", "台積電", "100,000", "2021-01"),
		record("2330", "台積電", "200,000", "2021-02"),
		record("2330", "台積電", "300,000", "2022-01"),
	}

	query := domain.RevenueQuery{
		CompanyIDs: []string{"2330"},
		Years:      []int{2021, 2022},
		Months:     []int{1, 2},
	}

	report := Aggregate(records, query)

	// 3 detail rows + 1 separator + 2 summary rows
	require.Len(t, report.Rows, 6)

	// Detail rows in chronological order
	assert.Equal(t, "2021-01", report.Rows[0][7])
	assert.Equal(t, "2021-02", report.Rows[1][7])
	assert.Equal(t, "2022-01", report.Rows[2][7])

	// Exactly one blank separator, same width as detail rows
	separator := report.Rows[3]
	require.Len(t, separator, len(report.Rows[0]))
	for _, cell := range separator {
		assert.Empty(t, cell)
	}

	// Summary rows carry the mean in the revenue column and the year label
	// in the period column
	assert.Equal(t, "150000.00", report.Rows[4][2])
	assert.Equal(t, "2021年 平均值", report.Rows[4][7])
	assert.Equal(t, "300000.00", report.Rows[5][2])
	assert.Equal(t, "2022年 平均值", report.Rows[5][7])

	// Chart-facing mapping mirrors the summary rows
	require.Contains(t, report.YearlyAverages, "2330")
	assert.Equal(t, 150000.0, report.YearlyAverages["2330"][2021])
	assert.Equal(t, 300000.0, report.YearlyAverages["2330"][2022])
}

func TestAggregate_GroupsByCompany(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2317", "鴻海", "50,000", "2021-01"),
		record("2330", "台積電", "100,000", "2021-01"),
		record("2317", "鴻海", "70,000", "2021-02"),
	}

	query := domain.RevenueQuery{
		CompanyIDs: []string{"2330", "2317"},
		Years:      []int{2021},
		Months:     []int{1, 2},
	}

	report := Aggregate(records, query)

	// Groups ordered by company id: 2317 (2 details + sep + 1 summary),
	// then 2330 (1 detail + sep + 1 summary)
	require.Len(t, report.Rows, 7)
	assert.Equal(t, "2317", report.Rows[0][0])
	assert.Equal(t, "2317", report.Rows[1][0])
	assert.Equal(t, "60000.00", report.Rows[3][2])
	assert.Equal(t, "2330", report.Rows[4][0])
	assert.Equal(t, "100000.00", report.Rows[6][2])

	// One company's buckets never leak into another's
	assert.Equal(t, 60000.0, report.YearlyAverages["2317"][2021])
	assert.Equal(t, 100000.0, report.YearlyAverages["2330"][2021])
}

func TestAggregate_StableUnderShuffle(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2317", "鴻海", "50,000", "2021-01"),
		record("2317", "鴻海", "70,000", "2021-02"),
		record("2330", "台積電", "100,000", "2021-01"),
		record("2330", "台積電", "200,000", "2021-02"),
		record("2330", "台積電", "300,000", "2022-01"),
	}

	query := domain.RevenueQuery{
		CompanyIDs: []string{"2330", "2317"},
		Years:      []int{2021, 2022},
		Months:     []int{1, 2},
	}

	baseline := Aggregate(records, query)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*domain.MonthlyRevenueRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, baseline, Aggregate(shuffled, query))
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2330", "台積電", "1,234,567", "2020-12"),
	}

	query := domain.RevenueQuery{CompanyIDs: []string{"2330"}, Years: []int{2020}, Months: []int{12}}

	first := Aggregate(records, query)
	second := Aggregate(records, query)

	assert.Equal(t, first, second)
	assert.Equal(t, "1234567.00", first.Rows[2][2])
}

func TestAggregate_MalformedRevenueExcluded(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2330", "台積電", "100,000", "2021-01"),
		record("2330", "台積電", "n/a", "2021-02"),
	}

	query := domain.RevenueQuery{CompanyIDs: []string{"2330"}, Years: []int{2021}, Months: []int{1, 2}}

	report := Aggregate(records, query)

	// Both detail rows kept, only the parseable one contributes to the mean
	require.Len(t, report.Rows, 4)
	assert.Equal(t, "100000.00", report.Rows[3][2])
}

func TestAggregate_EmptyInput(t *testing.T) {
	query := domain.RevenueQuery{CompanyIDs: []string{"9999"}, Years: []int{2021}, Months: []int{1}}

	report := Aggregate(nil, query)

	assert.Empty(t, report.Rows)
	assert.Empty(t, report.YearlyAverages)
}

func TestAggregate_IncludeEmptyYearsStillSkipsZeroRecordYears(t *testing.T) {
	records := []*domain.MonthlyRevenueRecord{
		record("2330", "台積電", "100,000", "2021-01"),
	}

	query := domain.RevenueQuery{
		CompanyIDs:        []string{"2330"},
		Years:             []int{2020, 2021, 2022},
		Months:            []int{1},
		IncludeEmptyYears: true,
	}

	report := Aggregate(records, query)

	// 1 detail + 1 separator + 1 summary; empty years never fabricate rows
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "2021年 平均值", report.Rows[2][7])
}
