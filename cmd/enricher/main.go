package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maximdx/TrendRadar/internal/config"
	"github.com/maximdx/TrendRadar/internal/fetcher"
	"github.com/maximdx/TrendRadar/internal/publisher"
	"github.com/maximdx/TrendRadar/internal/scheduler"
	"github.com/maximdx/TrendRadar/internal/service"
	"github.com/maximdx/TrendRadar/internal/storage/sqlite"
	"github.com/maximdx/TrendRadar/internal/urlutil"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single enrichment pass and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	pageFetcher := fetcher.New(fetcher.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		UserAgent:    cfg.Fetch.UserAgent,
	}, logger, fetcher.NewHackerNewsHook(""))

	// Resolved-entry events are optional; the orchestrator accepts a nil
	// publisher.
	var resolvedPublisher service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		resolvedPublisher = rabbitMQ
	}

	openCache := func(ctx context.Context) (service.PublishTimeCache, error) {
		return sqlite.Open(cfg.Cache.Path, cfg.Cache.MissTTL())
	}

	enrichService := service.NewEnrichService(
		openCache,
		pageFetcher,
		resolvedPublisher,
		urlutil.Normalize,
		logger,
		cfg.Enrich,
	)

	runner := service.NewFileRunner(enrichService, cfg.Run.InputPath, cfg.Run.OutputPath, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		passCtx, passCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer passCancel()
		if _, err := runner.Run(passCtx); err != nil {
			logger.Error("enrichment pass failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting publish time enricher",
		"input", cfg.Run.InputPath,
		"interval", cfg.Run.Interval,
		"max_fetch_per_run", cfg.Enrich.MaxFetchPerRun,
		"max_workers", cfg.Enrich.MaxWorkers,
	)

	sched := scheduler.NewScheduler(runner, cfg.Run.Interval, logger)
	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
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
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
