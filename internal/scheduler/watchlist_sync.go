package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
	"github.com/twmops/revenue-insight-api/internal/usecases/reporting"
	"github.com/twmops/revenue-insight-api/pkg/utils"
)

// WatchlistSyncConfig holds the scheduling knobs for the watchlist job
type WatchlistSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	CompanyIDs   []string
	YearLookback int
}

// WatchlistSyncService periodically collects monthly revenue for a configured
// company watchlist and upserts the per-year averages as snapshots. The
// snapshots feed dashboards only; report reads always hit the portal fresh.
type WatchlistSyncService struct {
	scheduler           *gocron.Scheduler
	config              WatchlistSyncConfig
	reporter            reporting.Reporter
	snapshotRepo        repository.RevenueSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// WatchlistSyncStatus is the status payload exposed by the cron endpoints
type WatchlistSyncStatus struct {
	Enabled             bool      `json:"enabled"`
	Running             bool      `json:"running"`
	CronSchedule        string    `json:"cron_schedule"`
	WatchedCompanies    int       `json:"watched_companies"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
}

func NewWatchlistSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.RevenueSnapshotRepository,
	appConfig *config.Config,
) *WatchlistSyncService {
	syncConfig := WatchlistSyncConfig{
		CronSchedule: appConfig.WatchlistSync.CronSchedule,
		SyncEnabled:  appConfig.WatchlistSync.Enabled,
		CompanyIDs:   utils.SplitCSV(appConfig.WatchlistSync.CompanyIDs),
		YearLookback: appConfig.WatchlistSync.YearLookback,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"companies":     len(syncConfig.CompanyIDs),
		"year_lookback": syncConfig.YearLookback,
	}).Info("watchlist sync configuration loaded")

	return &WatchlistSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
	}
}

// Start schedules the job and stops it when the context is cancelled
func (s *WatchlistSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("watchlist sync disabled by configuration")
		return nil
	}

	if len(s.config.CompanyIDs) == 0 {
		logrus.Warn("watchlist sync enabled but no companies configured")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting watchlist sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncWatchlist(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling watchlist sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping watchlist sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers one sync outside the schedule, e.g. from the cron endpoint.
// The sync outlives the caller: a request-scoped context is cut loose so the
// handler answering "started" does not cancel the run it just started.
func (s *WatchlistSyncService) RunNow(ctx context.Context) {
	go s.syncWatchlist(context.WithoutCancel(ctx))
}

// Status reports the scheduler state for the operations endpoint
func (s *WatchlistSyncService) Status() WatchlistSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return WatchlistSyncStatus{
		Enabled:             s.config.SyncEnabled,
		Running:             s.syncRunning,
		CronSchedule:        s.config.CronSchedule,
		WatchedCompanies:    len(s.config.CompanyIDs),
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
	}
}

func (s *WatchlistSyncService) syncWatchlist(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("watchlist sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	query := s.watchlistQuery(time.Now())

	logrus.WithFields(logrus.Fields{
		"companies": len(query.CompanyIDs),
		"years":     query.Years,
	}).Info("starting watchlist revenue sync")

	report, err := s.reporter.GenerateReport(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("watchlist sync report generation failed")
		return
	}

	saved := 0
	names := companyNames(report.Rows)

	for companyID, byYear := range report.YearlyAverages {
		for year, average := range byYear {
			snapshot := &domain.RevenueSnapshot{
				CompanyID:      companyID,
				CompanyName:    names[companyID],
				Year:           year,
				AverageRevenue: average,
				SampleMonths:   sampleMonths(report.Rows, companyID, year),
			}

			if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"company_id": companyID,
					"year":       year,
				}).Warn("failed to persist revenue snapshot")
				continue
			}
			saved++
		}
	}

	logrus.WithFields(logrus.Fields{
		"snapshots": saved,
		"failed":    report.Stats.Failed,
	}).Info("watchlist revenue sync completed")
}

// watchlistQuery builds the full-month query for the configured lookback
// window ending at the current year.
func (s *WatchlistSyncService) watchlistQuery(now time.Time) domain.RevenueQuery {
	lookback := s.config.YearLookback
	if lookback < 1 {
		lookback = 1
	}

	years := make([]int, 0, lookback)
	for year := now.Year() - lookback + 1; year <= now.Year(); year++ {
		years = append(years, year)
	}

	months := make([]int, 0, 12)
	for month := 1; month <= 12; month++ {
		months = append(months, month)
	}

	return domain.RevenueQuery{
		CompanyIDs: s.config.CompanyIDs,
		Years:      years,
		Months:     months,
	}
}

// companyNames maps company id to the name shown on its detail rows
func companyNames(rows [][]string) map[string]string {
	names := make(map[string]string)
	for _, row := range rows {
		if len(row) >= 2 && row[0] != "" && names[row[0]] == "" {
			names[row[0]] = row[1]
		}
	}
	return names
}

// sampleMonths counts the detail rows contributing to one (company, year)
func sampleMonths(rows [][]string, companyID string, year int) int {
	prefix := fmt.Sprintf("%d-", year)

	count := 0
	for _, row := range rows {
		if len(row) >= 8 && row[0] == companyID && strings.HasPrefix(row[7], prefix) {
			count++
		}
	}
	return count
}
