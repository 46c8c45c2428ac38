package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/twmops/revenue-insight-api/infrastructure/repository/mocks"
	"github.com/twmops/revenue-insight-api/internal/api/handler/router"
	"github.com/twmops/revenue-insight-api/internal/domain"
)

func TestGetRevenueSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockRevenueSnapshotRepository(ctrl)

	mockSnapshotRepo.EXPECT().
		GetByCompanyID("2330").
		Return([]*domain.RevenueSnapshot{
			{CompanyID: "2330", CompanyName: "台積電", Year: 2023, AverageRevenue: 150000.0, SampleMonths: 12},
			{CompanyID: "2330", CompanyName: "台積電", Year: 2024, AverageRevenue: 180000.0, SampleMonths: 6},
		}, nil)

	rt := router.New(router.WithRoutes(RevenueSnapshots(mockSnapshotRepo)...))

	req := httptest.NewRequest(http.MethodGet, "/v1/revenue/snapshots/2330", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var snapshots []*domain.RevenueSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
	require.Len(t, snapshots, 2)
	assert.Equal(t, 2023, snapshots[0].Year)
	assert.Equal(t, 150000.0, snapshots[0].AverageRevenue)
}

func TestGetRevenueSnapshots_DatabaseDisabled(t *testing.T) {
	rt := router.New(router.WithRoutes(RevenueSnapshots(nil)...))

	req := httptest.NewRequest(http.MethodGet, "/v1/revenue/snapshots/2330", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
