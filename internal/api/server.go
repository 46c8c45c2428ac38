package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/internal/api/handler"
	"github.com/twmops/revenue-insight-api/internal/api/handler/router"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/scheduler"
	"github.com/twmops/revenue-insight-api/internal/usecases/authenticating"
	"github.com/twmops/revenue-insight-api/internal/usecases/reporting"
	"github.com/twmops/revenue-insight-api/internal/usecases/stockquoting"
	"github.com/twmops/revenue-insight-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportService reporting.Reporter,
	quoteService stockquoting.QuoteService,
	authenticator authenticating.Authenticator,
	historyRepo repository.QueryHistoryRepository,
	snapshotRepo repository.RevenueSnapshotRepository,
	watchlistSyncService *scheduler.WatchlistSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		WatchlistSyncService: watchlistSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.RevenueReports(reportService, historyRepo)...),
		router.WithRoutes(handler.RevenueSnapshots(snapshotRepo)...),
		router.WithRoutes(handler.StockQuotes(quoteService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server stopped")
	return nil
}
