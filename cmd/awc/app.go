package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"awc_tracker/internal/config"
	"awc_tracker/internal/enrich"
	"awc_tracker/internal/publisher"
	"awc_tracker/internal/service"
	"awc_tracker/internal/source/anilist"
	"awc_tracker/internal/storage"
	"awc_tracker/internal/storage/diskkv"
	"awc_tracker/internal/storage/sqlkv"
)

// app holds the wired dependencies of one command run.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	tracker *service.TrackerService
	closers []io.Closer
}

// newApp loads config and wires storage, the AniList client and the
// tracker service. Long-running commands log JSON to stdout.
func newApp(ctx context.Context, opts *rootOptions, longRunning bool) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &app{cfg: cfg, logger: setupLogger(cfg.LogLevel, longRunning)}

	kv, txManager, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	state := storage.NewState(kv, txManager, a.logger)

	client := anilist.New(anilist.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: "awc-tracker/" + version,
	}, a.logger)

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.closers = append(a.closers, rabbitMQ)
		pub = rabbitMQ
	}

	a.tracker = service.NewTrackerService(
		client,
		enrich.New(client, cfg.API.RequestDelay, a.logger),
		state,
		txManager,
		pub,
		a.logger,
	)
	return a, nil
}

func (a *app) openStorage(ctx context.Context) (storage.KV, storage.TransactionManager, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageSQLite, config.StoragePostgres:
		db, err := sqlkv.Open(ctx, a.cfg.Storage.Driver, a.cfg.Storage.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		a.closers = append(a.closers, db)
		a.logger.Debug("connected to database", "driver", a.cfg.Storage.Driver)
		return sqlkv.NewStore(db), sqlkv.NewTransactionManager(db), nil
	default:
		a.logger.Debug("using disk storage", "path", a.cfg.Storage.Path)
		return diskkv.New(a.cfg.Storage.Path), diskkv.NewTransactionManager(), nil
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

func setupLogger(level string, longRunning bool) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if longRunning {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
