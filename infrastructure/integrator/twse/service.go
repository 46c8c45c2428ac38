package twse

import (
	"context"

	"github.com/twmops/revenue-insight-api/infrastructure/integrator/twse/twseclient"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

// TwseIntegrator fetches historical daily price series from the exchange
type TwseIntegrator interface {
	GetDailyQuotes(ctx context.Context, stockNo string, year, month int) ([]domain.DailyQuote, error)
}

type TwseService struct {
	cfg    *config.Config
	Client twseclient.Client
}

func New(cfg *config.Config, client twseclient.Client) TwseIntegrator {
	return &TwseService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TwseService) GetDailyQuotes(ctx context.Context, stockNo string, year, month int) ([]domain.DailyQuote, error) {
	return s.Client.GetDailyQuotes(ctx, twseclient.DailyQuotesParams{
		StockNo: stockNo,
		Year:    year,
		Month:   month,
	})
}
