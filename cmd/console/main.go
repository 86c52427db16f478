// Package main provides the local GT4500 console. It reads commands from
// stdin and writes results to stdout.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/config"
	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/observability"
	"github.com/cory-johannsen/gt4500/internal/ship"
	"github.com/cory-johannsen/gt4500/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	quiet := flag.Bool("quiet", false, "suppress the welcome banner and prompt")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	recorder := console.Recorder(console.NopRecorder{})
	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		recorder = postgres.NewFiringLogRepository(pool.DB())
		logger.Info("firing log enabled",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Name),
		)
	}

	var feedback console.Sink
	if *quiet {
		feedback = console.NewOptionalSink(nil)
	} else {
		feedback = console.NewOptionalSink(os.Stdout)
	}

	gunner := ship.NewGunner(ship.NewCryptoSource(), logger)
	c := console.New(gunner, recorder, logger)

	start := time.Now()
	if err := c.RunReader(ctx, os.Stdin, os.Stdout, feedback); err != nil {
		logger.Fatal("console error", zap.Error(err))
	}
	logger.Debug("console session finished",
		zap.Duration("duration", time.Since(start)),
	)
}
