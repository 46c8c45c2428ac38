package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/internal/scheduler"
	"github.com/twmops/revenue-insight-api/pkg/apiErrors"
)

const (
	CronJobTypeWatchlist = "watchlist"
)

// CronJobServices holds the schedulers the cron endpoints can trigger
type CronJobServices struct {
	WatchlistSyncService *scheduler.WatchlistSyncService
}

// RunCronJob triggers one scheduled job outside its schedule
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeWatchlist:
			if services.WatchlistSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "watchlist sync requires a configured database", nil)
				return
			}
			services.WatchlistSyncService.RunNow(r.Context())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: watchlist", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron job triggered manually")

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of the scheduled jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.WatchlistSyncService != nil {
			status[CronJobTypeWatchlist] = services.WatchlistSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
