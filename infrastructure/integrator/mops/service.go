package mops

import (
	"context"

	"github.com/twmops/revenue-insight-api/infrastructure/integrator/mops/mopsclient"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

// MopsIntegrator fetches monthly revenue disclosures from the MOPS portal.
//
// FetchMonthlyRevenue resolves one (company, year, month) combination into at
// most one record: (record, nil) on a match, (nil, nil) when the period page
// exists but carries no row for the company or the page itself is absent, and
// (nil, *FetchError) when the fetch broke and should be retried.
type MopsIntegrator interface {
	FetchMonthlyRevenue(ctx context.Context, companyID string, year, month int) (*domain.MonthlyRevenueRecord, error)
}

type MopsService struct {
	cfg    *config.Config
	Client mopsclient.Client
}

func New(cfg *config.Config, client mopsclient.Client) MopsIntegrator {
	return &MopsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MopsService) FetchMonthlyRevenue(ctx context.Context, companyID string, year, month int) (*domain.MonthlyRevenueRecord, error) {
	return s.Client.GetMonthlyRevenue(ctx, mopsclient.MonthlyRevenueParams{
		CompanyID: companyID,
		Year:      year,
		Month:     month,
	})
}
