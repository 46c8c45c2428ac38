package handler

import (
	"errors"
	"net/http"

	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/internal/domain"
	"github.com/twmops/revenue-insight-api/internal/usecases/reporting"
	"github.com/twmops/revenue-insight-api/pkg/apiErrors"
	"github.com/twmops/revenue-insight-api/pkg/log"
	"github.com/twmops/revenue-insight-api/pkg/utils"
)

// GetRevenueReport fetches monthly revenue for the requested companies over
// the requested year and month ranges and answers with the aggregated report.
// Range parameters are validated before any portal request goes out, a bad
// token never costs a fetch.
func GetRevenueReport(service reporting.Reporter, historyRepo repository.QueryHistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseReportQuery(r)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidRangeFormat) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRangeFormat, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"companies":    len(query.CompanyIDs),
			"years":        query.Years,
			"months":       query.Months,
			"combinations": query.TotalCombinations(),
		}).Info("revenue-report: starting report generation")

		if log.IsDevelopment() {
			logger.Debugf("revenue-report: parsed query %s", utils.PrettyJson(query))
		}

		report, err := service.GenerateReport(r.Context(), query)
		if err != nil {
			logger.WithError(err).Error("revenue-report: report generation failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		recordQueryHistory(historyRepo, query, logger)

		logger.WithFields(log.Fields{
			"rows":      len(report.Rows),
			"collected": report.Stats.Collected,
			"missing":   report.Stats.Missing,
			"failed":    report.Stats.Failed,
		}).Info("revenue-report: report generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("revenue-report: error encoding response")
		}
	})
}

// ListReportHistory returns the most recent report queries. Answers 503 when
// no database is configured.
func ListReportHistory(historyRepo repository.QueryHistoryRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if historyRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "query history requires a configured database", nil)
			return
		}

		entries, err := historyRepo.ListRecent(50)
		if err != nil {
			logger.WithError(err).Error("report-history: listing failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "could not list report history", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("report-history: error encoding response")
		}
	})
}

func parseReportQuery(r *http.Request) (domain.RevenueQuery, error) {
	params := r.URL.Query()

	companies := utils.SplitCSV(params.Get("companies"))
	if len(companies) == 0 {
		return domain.RevenueQuery{}, errors.New("companies parameter is required")
	}

	years, err := utils.ExpandRangeList(utils.SplitCSV(params.Get("years")))
	if err != nil {
		return domain.RevenueQuery{}, err
	}
	if len(years) == 0 {
		return domain.RevenueQuery{}, errors.New("years parameter is required")
	}

	months, err := utils.ExpandRangeList(utils.SplitCSV(params.Get("months")))
	if err != nil {
		return domain.RevenueQuery{}, err
	}
	if len(months) == 0 {
		return domain.RevenueQuery{}, errors.New("months parameter is required")
	}

	return domain.RevenueQuery{
		CompanyIDs:        companies,
		Years:             years,
		Months:            months,
		IncludeEmptyYears: params.Get("include_empty_years") == "true",
	}, nil
}

// recordQueryHistory saves the query for the history endpoint. Best effort,
// a storage failure never fails the report that was already generated.
func recordQueryHistory(historyRepo repository.QueryHistoryRepository, query domain.RevenueQuery, logger log.Logger) {
	if historyRepo == nil {
		return
	}

	entry := &domain.QueryHistoryEntry{
		CompanyIDs: query.CompanyIDs,
		Years:      query.Years,
		Months:     query.Months,
	}

	if err := historyRepo.Save(entry); err != nil {
		logger.WithError(err).Warn("revenue-report: could not record query history")
	}
}
