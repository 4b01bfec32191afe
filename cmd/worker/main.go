package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/divine-glow/backoffice/internal/app"
	"github.com/divine-glow/backoffice/internal/catalog"
	"github.com/divine-glow/backoffice/internal/directory"
	jobmetrics "github.com/divine-glow/backoffice/internal/jobs"
	"github.com/divine-glow/backoffice/internal/ledger"
	"github.com/divine-glow/backoffice/internal/orders"
	"github.com/divine-glow/backoffice/internal/platform/kvstore"
	"github.com/divine-glow/backoffice/internal/sales"
	"github.com/divine-glow/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	metrics := jobmetrics.NewMetrics(nil)

	catalogRepo := catalog.NewRepository(store, logger)
	catalogService := catalog.NewService(catalogRepo, logger)

	directoryRepo := directory.NewRepository(store, logger)
	directoryService := directory.NewService(directoryRepo)

	salesRepo := sales.NewRepository(store, logger)
	salesService := sales.NewService(salesRepo, catalogService, sales.ServiceConfig{}, logger)

	ordersRepo := orders.NewRepository(store, logger)
	ordersService := orders.NewService(ordersRepo, logger)

	ledgerService := ledger.NewService(salesService, ordersService, catalogService, directoryService)

	scanTask, err := jobs.NewLowStockScanTask(time.Now())
	if err != nil {
		logger.Error("build low-stock scan task", slog.Any("error", err))
		os.Exit(1)
	}
	digestTask, err := jobs.NewLedgerDigestTask("")
	if err != nil {
		logger.Error("build ledger digest task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskLowStockScan, Handler: jobs.NewLowStockScanHandler(catalogService, metrics, logger)},
			{Type: jobs.TaskLedgerDigest, Handler: jobs.NewLedgerDigestHandler(ledgerService, metrics, logger)},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.LowStockCron, Task: scanTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: cfg.LedgerDigestCron, Task: digestTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
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
