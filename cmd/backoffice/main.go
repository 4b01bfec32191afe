package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/divine-glow/backoffice/internal/app"
	"github.com/divine-glow/backoffice/internal/catalog"
	"github.com/divine-glow/backoffice/internal/directory"
	"github.com/divine-glow/backoffice/internal/ledger"
	"github.com/divine-glow/backoffice/internal/observability"
	"github.com/divine-glow/backoffice/internal/orders"
	"github.com/divine-glow/backoffice/internal/platform/kvstore"
	"github.com/divine-glow/backoffice/internal/sales"
	"github.com/divine-glow/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect store", slog.String("backend", cfg.KVBackend), slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	metrics := observability.NewMetrics()

	catalogRepo := catalog.NewRepository(store, logger)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	directoryRepo := directory.NewRepository(store, logger)
	directoryService := directory.NewService(directoryRepo)
	directoryHandler := directory.NewHandler(logger, directoryService)

	salesRepo := sales.NewRepository(store, logger)
	salesService := sales.NewService(salesRepo, catalogService, sales.ServiceConfig{
		DecrementStockOnCommit: cfg.DecrementStockOnSale,
		OnCommit:               metrics.SaleCommitted,
	}, logger)
	salesHandler := sales.NewHandler(logger, salesService)

	ordersRepo := orders.NewRepository(store, logger)
	ordersService := orders.NewService(ordersRepo, logger)
	ordersHandler := orders.NewHandler(logger, ordersService)

	ledgerService := ledger.NewService(salesService, ordersService, catalogService, directoryService)
	ledgerHandler := ledger.NewHandler(ledgerService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalogHandler,
		SalesHandler:     salesHandler,
		LedgerHandler:    ledgerHandler,
		OrdersHandler:    ordersHandler,
		DirectoryHandler: directoryHandler,
		JobsHandler:      jobsHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

func newStore(ctx context.Context, cfg *app.Config, logger *slog.Logger) (kvstore.Store, func(), error) {
	switch cfg.KVBackend {
	case app.BackendPostgres:
		pool, err := kvstore.ConnectPostgres(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewPostgres(pool), pool.Close, nil
	default:
		client, err := kvstore.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}
		return kvstore.NewRedis(client), cleanup, nil
	}
}
