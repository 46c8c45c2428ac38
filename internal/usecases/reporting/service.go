package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/infrastructure/integrator/mops"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

// Service collects monthly revenue disclosures through the MOPS integrator
// and aggregates them into presentation-ready reports.
type Service struct {
	cfg         *config.Config
	mopsService mops.MopsIntegrator
	observer    ProgressObserver
}

func NewService(cfg *config.Config, mopsService mops.MopsIntegrator) *Service {
	return &Service{
		cfg:         cfg,
		mopsService: mopsService,
		observer:    LogrusProgressObserver(),
	}
}

// WithProgressObserver swaps the progress notification target, e.g. for a
// different operator display or to silence progress in tests.
func (s *Service) WithProgressObserver(observer ProgressObserver) *Service {
	if observer != nil {
		s.observer = observer
	}
	return s
}

// CollectMonthlyRevenue enumerates the cross product company-outer,
// year-middle, month-inner and resolves each combination through exactly one
// fetch. Strictly sequential: one fetch completes or fails before the next
// starts. The context is checked between combinations, the only cancel point.
func (s *Service) CollectMonthlyRevenue(ctx context.Context, query domain.RevenueQuery) ([]*domain.MonthlyRevenueRecord, *domain.CollectionStats) {
	stats := &domain.CollectionStats{
		TotalCombinations: query.TotalCombinations(),
	}

	records := make([]*domain.MonthlyRevenueRecord, 0, stats.TotalCombinations)
	delay := time.Duration(s.cfg.Mops.RequestDelayMillis) * time.Millisecond

	done := 0
	for _, companyID := range query.CompanyIDs {
		for _, year := range query.Years {
			for _, month := range query.Months {
				if ctx.Err() != nil {
					logrus.WithField("done", done).Warn("revenue collection cancelled")
					return records, stats
				}

				target := domain.FetchTarget{CompanyID: companyID, Year: year, Month: month}

				record, err := s.mopsService.FetchMonthlyRevenue(ctx, companyID, year, month)

				done++
				s.observer(done, stats.TotalCombinations, target)

				switch {
				case err != nil:
					// One bad period must not prevent collecting the rest.
					stats.Failed++
					logrus.WithError(err).WithFields(logrus.Fields{
						"company_id": companyID,
						"period":     target.Period(),
						"retryable":  mops.IsRetryable(err),
					}).Warn("skipping combination after fetch failure")
				case record == nil:
					stats.Missing++
				default:
					// The period is stamped from the loop variables, never
					// from anything parsed out of the page.
					record.Period = fmt.Sprintf("%d-%02d", year, month)
					records = append(records, record)
					stats.Collected++
				}

				if delay > 0 {
					time.Sleep(delay)
				}
			}
		}
	}

	return records, stats
}

// GenerateReport runs collection and aggregation for one query
func (s *Service) GenerateReport(ctx context.Context, query domain.RevenueQuery) (*domain.RevenueReport, error) {
	if query.TotalCombinations() == 0 {
		return nil, ErrEmptyQuery
	}

	records, stats := s.CollectMonthlyRevenue(ctx, query)

	report := Aggregate(records, query)
	report.Stats = stats

	logrus.WithFields(logrus.Fields{
		"total":     stats.TotalCombinations,
		"collected": stats.Collected,
		"missing":   stats.Missing,
		"failed":    stats.Failed,
		"rows":      len(report.Rows),
	}).Info("revenue report generated")

	return report, nil
}
