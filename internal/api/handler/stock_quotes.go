package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/twmops/revenue-insight-api/internal/usecases/stockquoting"
	"github.com/twmops/revenue-insight-api/pkg/apiErrors"
	"github.com/twmops/revenue-insight-api/pkg/log"
)

// GetStockQuotes returns one month of daily quotes for a stock. Year and
// month default to the current month when omitted.
func GetStockQuotes(service stockquoting.QuoteService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stockNo := httprouter.ParamsFromContext(r.Context()).ByName("id")

		now := time.Now()
		year, err := intParam(r, "year", now.Year())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "year must be an integer", nil)
			return
		}

		month, err := intParam(r, "month", int(now.Month()))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "month must be an integer", nil)
			return
		}

		if month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "month must be between 1 and 12", nil)
			return
		}

		series, err := service.GetMonthlyQuoteSeries(r.Context(), stockNo, year, month)
		if err != nil {
			if errors.Is(err, stockquoting.ErrStockNoRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"stock_no": stockNo,
				"year":     year,
				"month":    month,
			}).Error("stock-quotes: fetch failed")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "could not fetch daily quotes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("stock-quotes: error encoding response")
		}
	})
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
