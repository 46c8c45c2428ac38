package stockquoting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/infrastructure/integrator/twse"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

var ErrStockNoRequired = errors.New("stock number is required")

// QuoteService resolves one month of daily quotes for a single stock, the
// series a candlestick chart consumes.
type QuoteService interface {
	GetMonthlyQuoteSeries(ctx context.Context, stockNo string, year, month int) (*domain.StockQuoteSeries, error)
}

type Service struct {
	cfg         *config.Config
	twseService twse.TwseIntegrator
}

func NewService(cfg *config.Config, twseService twse.TwseIntegrator) QuoteService {
	return &Service{
		cfg:         cfg,
		twseService: twseService,
	}
}

func (s *Service) GetMonthlyQuoteSeries(ctx context.Context, stockNo string, year, month int) (*domain.StockQuoteSeries, error) {
	if stockNo == "" {
		return nil, ErrStockNoRequired
	}

	quotes, err := s.twseService.GetDailyQuotes(ctx, stockNo, year, month)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"stock_no": stockNo,
		"year":     year,
		"month":    month,
		"quotes":   len(quotes),
	}).Info("daily quote series fetched")

	return &domain.StockQuoteSeries{
		StockNo: stockNo,
		Year:    year,
		Month:   month,
		Quotes:  quotes,
	}, nil
}
