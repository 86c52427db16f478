// Package main provides the GT4500 console server. It serves the console
// over Telnet, one independent ship per connection, with optional firing
// log persistence in PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/config"
	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/frontend/handlers"
	"github.com/cory-johannsen/gt4500/internal/frontend/telnet"
	"github.com/cory-johannsen/gt4500/internal/observability"
	"github.com/cory-johannsen/gt4500/internal/server"
	"github.com/cory-johannsen/gt4500/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting console server",
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.Bool("firing_log", cfg.Database.Enabled),
	)

	ctx := context.Background()
	lifecycle := server.NewLifecycle(logger)

	recorder := console.Recorder(console.NopRecorder{})
	if cfg.Database.Enabled {
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.String("database", cfg.Database.Name),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		recorder = postgres.NewFiringLogRepository(pool.DB())

		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func() error {
				for {
					time.Sleep(30 * time.Second)
					if err := pool.Health(ctx, 5*time.Second); err != nil {
						logger.Warn("database health check failed", zap.Error(err))
					}
				}
			},
			StopFn: func() {
				pool.Close()
			},
		})
	}

	sessions := handlers.NewManager()
	consoleHandler := handlers.NewConsoleHandler(recorder, sessions, logger)
	telnetAcceptor := telnet.NewAcceptor(cfg.Telnet, consoleHandler, logger)

	lifecycle.Add("telnet", &server.FuncService{
		StartFn: func() error {
			return telnetAcceptor.ListenAndServe()
		},
		StopFn: func() {
			telnetAcceptor.Stop()
		},
	})

	logger.Info("console server initialized",
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
