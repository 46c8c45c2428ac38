package twseclient

import (
	"context"
	"net/http"
	"time"

	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

type Client interface {
	GetDailyQuotes(ctx context.Context, params DailyQuotesParams) ([]domain.DailyQuote, error)
}

type TwseClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Twse.RequestTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &TwseClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
