package mopsclient

import (
	"context"
	"net/http"
	"time"

	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

type Client interface {
	GetMonthlyRevenue(ctx context.Context, params MonthlyRevenueParams) (*domain.MonthlyRevenueRecord, error)
}

type MopsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Mops.RequestTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MopsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
