package reporting

import (
	"context"

	"github.com/twmops/revenue-insight-api/internal/domain"
)

// Reporter drives the full collection and aggregation pipeline for one
// report request.
type Reporter interface {
	// CollectMonthlyRevenue walks the query cross product sequentially,
	// fetching one combination at a time. Failed combinations are recorded in
	// the stats and skipped, never fatal.
	CollectMonthlyRevenue(ctx context.Context, query domain.RevenueQuery) ([]*domain.MonthlyRevenueRecord, *domain.CollectionStats)

	// GenerateReport collects and aggregates into presentation rows plus the
	// per-company yearly average mapping.
	GenerateReport(ctx context.Context, query domain.RevenueQuery) (*domain.RevenueReport, error)
}
