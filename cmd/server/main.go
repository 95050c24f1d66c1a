package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"marlin/internal/classroom"
	"marlin/internal/classroom/cache"
	"marlin/internal/classroom/events"
	classmetrics "marlin/internal/classroom/metrics"
	"marlin/internal/platform/config"
	"marlin/internal/platform/httpserver"
	"marlin/internal/platform/logger"
	"marlin/internal/platform/metrics"
	"marlin/internal/platform/postgres"
	redisplatform "marlin/internal/platform/redis"
	httptransport "marlin/internal/transport/http"
	"marlin/pkg/platform/circuit"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marlin: %v\n", err)
		os.Exit(1)
	}
}

// run wires infrastructure from the environment and serves until SIGINT or
// SIGTERM. Business logic lives in internal/classroom.
func run() error {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := classroom.Options{Logger: log, Metrics: classmetrics.New(reg)}
	var checks []httptransport.HealthCheck

	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		if cfg.Database.Migrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("database migrations applied")
		}
		opts.DB = db
		checks = append(checks, httptransport.HealthCheck{Name: "postgres", Check: db.PingContext})
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	redisClient, err := redisplatform.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts.Cache = cache.NewGuarded(
			cache.New(redisClient.Client, cfg.Redis.CacheTTL),
			circuit.New("class-cache"),
			log,
		)
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer publisher.Close()
		opts.Events = publisher
		checks = append(checks, httptransport.HealthCheck{Name: "kafka", Check: publisher.Health})
	}

	module := classroom.New(opts)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.Server.RequestTimeout,
		HealthChecks:   checks,
	}, module.Handler)

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting marlin", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
