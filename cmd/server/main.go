package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"campus-cafe/internal/config"
	"campus-cafe/internal/connections/database"
	"campus-cafe/internal/connections/rabbitmq"
	"campus-cafe/internal/events"
	"campus-cafe/internal/handlers"
	"campus-cafe/internal/httpx"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/notifier"
	"campus-cafe/internal/repository"
	"campus-cafe/internal/service"
)

func main() {
	var (
		cfgPath = flag.String("config", "config.yml", "path to YAML config")
		mode    = flag.String("mode", "api", "api | notifier")
	)
	flag.Parse()

	lg := logger.New("campus-cafe")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "api":
		if err := runAPI(ctx, cfg, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notifier":
		if err := runNotifier(ctx, cfg, lg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be api or notifier")
		os.Exit(2)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()
	lg.Info("db_connected", map[string]any{
		"host": cfg.Database.Host, "port": cfg.Database.Port, "database": cfg.Database.Database,
	})

	if err := repository.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	repo := repository.New(db)
	if err := repo.Catalog.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("catalog seed: %w", err)
	}

	var publisher events.PublisherInterface
	if cfg.RabbitMQ.Enabled() {
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			return fmt.Errorf("rabbitmq connect: %w", err)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			return fmt.Errorf("rabbitmq declare: %w", err)
		}
		publisher = events.NewPublisher(rmq)
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
	}

	svc := service.New(repo, publisher, lg)
	h := handlers.New(svc, lg)

	srv := httpx.New(":"+strconv.Itoa(cfg.HTTP.Port), handlers.Router(h, lg))
	lg.Info("service_started", map[string]any{"mode": "api", "port": cfg.HTTP.Port})
	return srv.Run(ctx)
}

func runNotifier(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	if !cfg.RabbitMQ.Enabled() {
		return fmt.Errorf("notifier mode requires rabbitmq config")
	}

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	if err := rmq.DeclareTopology(); err != nil {
		return fmt.Errorf("rabbitmq declare: %w", err)
	}

	lg.Info("service_started", map[string]any{"mode": "notifier"})
	return notifier.Run(ctx, rmq, lg)
}
