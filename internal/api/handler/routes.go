package handler

import (
	"net/http"

	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/internal/api/handler/router"
	"github.com/twmops/revenue-insight-api/internal/usecases/authenticating"
	"github.com/twmops/revenue-insight-api/internal/usecases/reporting"
	"github.com/twmops/revenue-insight-api/internal/usecases/stockquoting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

// RevenueReports wires the report endpoint and, when a database is
// configured, the query history listing. historyRepo may be nil.
func RevenueReports(service reporting.Reporter, historyRepo repository.QueryHistoryRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/report",
			Method:  http.MethodGet,
			Handler: GetRevenueReport(service, historyRepo),
		},
		{
			Path:    "/v1/reports/history",
			Method:  http.MethodGet,
			Handler: ListReportHistory(historyRepo),
		},
	}
}

// RevenueSnapshots exposes the averages the watchlist sync persists.
// snapshotRepo may be nil when no database is configured.
func RevenueSnapshots(snapshotRepo repository.RevenueSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/snapshots/:id",
			Method:  http.MethodGet,
			Handler: GetRevenueSnapshots(snapshotRepo),
		},
	}
}

func StockQuotes(service stockquoting.QuoteService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stocks/:id/quotes",
			Method:  http.MethodGet,
			Handler: GetStockQuotes(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
