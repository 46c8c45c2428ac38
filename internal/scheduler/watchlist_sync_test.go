package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/twmops/revenue-insight-api/infrastructure/repository/mocks"
	"github.com/twmops/revenue-insight-api/internal/domain"
	reportingmocks "github.com/twmops/revenue-insight-api/internal/usecases/reporting/mocks"
)

func TestWatchlistSyncService_syncWatchlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockRevenueSnapshotRepository(ctrl)

	service := &WatchlistSyncService{
		config: WatchlistSyncConfig{
			SyncEnabled:  true,
			CompanyIDs:   []string{"2330"},
			YearLookback: 1,
		},
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	year := time.Now().Year()
	period := func(month int) string {
		return domain.FetchTarget{CompanyID: "2330", Year: year, Month: month}.Period()
	}

	report := &domain.RevenueReport{
		Headers: domain.ReportHeaders,
		Rows: [][]string{
			{"2330", "台積電", "100", "90", "80", "11.1", "25.0", period(1)},
			{"2330", "台積電", "200", "100", "90", "100.0", "122.2", period(2)},
			make([]string, len(domain.ReportHeaders)),
		},
		YearlyAverages: map[string]map[int]float64{
			"2330": {year: 150.0},
		},
		Stats: &domain.CollectionStats{TotalCombinations: 12, Collected: 2, Missing: 10},
	}

	mockReporter.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.RevenueQuery) (*domain.RevenueReport, error) {
			assert.Equal(t, []string{"2330"}, query.CompanyIDs)
			assert.Equal(t, []int{year}, query.Years)
			assert.Len(t, query.Months, 12)
			return report, nil
		})

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.RevenueSnapshot) error {
			assert.Equal(t, "2330", snapshot.CompanyID)
			assert.Equal(t, "台積電", snapshot.CompanyName)
			assert.Equal(t, year, snapshot.Year)
			assert.InDelta(t, 150.0, snapshot.AverageRevenue, 0.001)
			assert.Equal(t, 2, snapshot.SampleMonths)
			return nil
		})

	service.syncWatchlist(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.False(t, status.LastSyncCompletedAt.IsZero())
}

func TestWatchlistSyncService_RunNowSurvivesCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockRevenueSnapshotRepository(ctrl)

	service := &WatchlistSyncService{
		config: WatchlistSyncConfig{
			SyncEnabled:  true,
			CompanyIDs:   []string{"2330"},
			YearLookback: 1,
		},
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	// A request-scoped context is already cancelled by the time the handler
	// has answered; the triggered sync must not inherit that cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	generated := make(chan struct{})
	mockReporter.EXPECT().
		GenerateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(syncCtx context.Context, _ domain.RevenueQuery) (*domain.RevenueReport, error) {
			assert.NoError(t, syncCtx.Err())
			defer close(generated)
			return &domain.RevenueReport{
				Headers:        domain.ReportHeaders,
				YearlyAverages: map[string]map[int]float64{},
				Stats:          &domain.CollectionStats{},
			}, nil
		})

	service.RunNow(ctx)

	select {
	case <-generated:
	case <-time.After(2 * time.Second):
		t.Fatal("triggered sync never reached report generation")
	}
}

func TestWatchlistSyncService_syncWatchlist_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockRevenueSnapshotRepository(ctrl)

	service := &WatchlistSyncService{
		config: WatchlistSyncConfig{
			SyncEnabled:  true,
			CompanyIDs:   []string{"2330"},
			YearLookback: 1,
		},
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}
	service.syncRunning = true

	// No reporter or repository call may happen while a sync is in flight.
	service.syncWatchlist(context.Background())
}

func TestWatchlistSyncService_watchlistQuery(t *testing.T) {
	service := &WatchlistSyncService{
		config: WatchlistSyncConfig{
			CompanyIDs:   []string{"2330", "1101"},
			YearLookback: 3,
		},
	}

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	query := service.watchlistQuery(now)

	assert.Equal(t, []string{"2330", "1101"}, query.CompanyIDs)
	assert.Equal(t, []int{2022, 2023, 2024}, query.Years)
	require.Len(t, query.Months, 12)
	assert.Equal(t, 1, query.Months[0])
	assert.Equal(t, 12, query.Months[11])
}

func TestWatchlistSyncService_watchlistQuery_LookbackFloor(t *testing.T) {
	service := &WatchlistSyncService{
		config: WatchlistSyncConfig{CompanyIDs: []string{"2330"}},
	}

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	query := service.watchlistQuery(now)

	assert.Equal(t, []int{2024}, query.Years)
}
