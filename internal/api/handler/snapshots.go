package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/pkg/apiErrors"
	"github.com/twmops/revenue-insight-api/pkg/log"
)

// GetRevenueSnapshots returns the persisted yearly averages for one company,
// ascending by year. Answers 503 when no database is configured.
func GetRevenueSnapshots(snapshotRepo repository.RevenueSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if snapshotRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "revenue snapshots require a configured database", nil)
			return
		}

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "company id is required", nil)
			return
		}

		snapshots, err := snapshotRepo.GetByCompanyID(companyID)
		if err != nil {
			logger.WithError(err).WithField("company_id", companyID).Error("snapshots: listing failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not list revenue snapshots", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("snapshots: error encoding response")
		}
	})
}
