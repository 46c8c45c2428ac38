package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twmops/revenue-insight-api/infrastructure/database/postgres"
	"github.com/twmops/revenue-insight-api/infrastructure/integrator/mops"
	"github.com/twmops/revenue-insight-api/infrastructure/integrator/mops/mopsclient"
	"github.com/twmops/revenue-insight-api/infrastructure/integrator/twse"
	"github.com/twmops/revenue-insight-api/infrastructure/integrator/twse/twseclient"
	"github.com/twmops/revenue-insight-api/infrastructure/repository"
	"github.com/twmops/revenue-insight-api/internal/api"
	"github.com/twmops/revenue-insight-api/internal/config"
	"github.com/twmops/revenue-insight-api/internal/scheduler"
	"github.com/twmops/revenue-insight-api/internal/usecases/authenticating"
	"github.com/twmops/revenue-insight-api/internal/usecases/reporting"
	"github.com/twmops/revenue-insight-api/internal/usecases/stockquoting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mopsClient := mopsclient.NewClient(cfg)
	mopsIntegrator := mops.New(cfg, mopsClient)

	twseClient := twseclient.NewClient(cfg)
	twseIntegrator := twse.New(cfg, twseClient)

	reportService := reporting.NewService(cfg, mopsIntegrator).
		WithProgressObserver(reporting.LogrusProgressObserver())

	quoteService := stockquoting.NewService(cfg, twseIntegrator)
	authenticator := authenticating.NewService(cfg)

	// The database is optional. Without it the report endpoint still works,
	// only query history and the watchlist snapshots are unavailable.
	var historyRepo repository.QueryHistoryRepository
	var snapshotRepo repository.RevenueSnapshotRepository
	var watchlistSyncService *scheduler.WatchlistSyncService

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		historyRepo = repository.NewQueryHistoryRepository(pgConn)
		snapshotRepo = repository.NewRevenueSnapshotRepository(pgConn)

		watchlistSyncService = scheduler.NewWatchlistSyncService(reportService, snapshotRepo, cfg)

		if err := watchlistSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("error starting watchlist sync scheduler")
		} else {
			logrus.Info("watchlist sync scheduler started")
		}
	} else {
		logrus.Info("database disabled, query history and watchlist sync unavailable")
	}

	server, err := api.New(
		cfg,
		reportService,
		quoteService,
		authenticator,
		historyRepo,
		snapshotRepo,
		watchlistSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
