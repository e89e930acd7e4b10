package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insureme-seeder/internal/domain/repository"
	"insureme-seeder/internal/infrastructure/config"
	"insureme-seeder/internal/infrastructure/persistence"
	seederRepo "insureme-seeder/internal/interface/repository"
	"insureme-seeder/internal/usecase"
	"insureme-seeder/pkg/logger"
	"insureme-seeder/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting InsureMe seeder", "version", cfg.AppVersion)

	// Cancel the run on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("InsureMe seeder failed", "error", err)
		log.Sync()
		os.Exit(1)
	}

	log.Info("Data generation and insertion completed")
	log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgres(ctx, cfg.PostgresDSN, log)
	if err != nil {
		return err
	}
	log.Info("Connected to PostgreSQL")
	defer func() {
		if err := persistence.Close(db); err != nil {
			log.Error("PostgreSQL close error", "error", err)
			return
		}
		log.Info("PostgreSQL connection closed")
	}()

	// Set up run report store, optional
	runs, closeRuns := openRunStore(ctx, cfg, log)
	defer closeRuns()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		log.Info("No SEED configured, derived one from the clock", "seed", seed)
	}

	m := metrics.NewMetrics("insureme_seeder")
	if cfg.PushgatewayURL != "" {
		defer func() {
			pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := m.Push(pushCtx, cfg.PushgatewayURL, "insureme_seeder"); err != nil {
				log.Error("Failed to push metrics", "error", err)
			}
		}()
	}

	loader := seederRepo.NewGormBulkLoader(db, cfg.BatchSize, log)
	seeder := usecase.NewSeeder(loader, runs, m, log)

	report, err := seeder.Run(ctx, usecase.RunOptions{
		AppVersion:       cfg.AppVersion,
		NumCustomers:     cfg.NumCustomers,
		Seed:             seed,
		Locale:           cfg.Locale,
		ClaimProbability: cfg.ClaimProbability,
		ClaimIDScheme:    usecase.ClaimIDScheme(cfg.ClaimIDScheme),
	})
	if err != nil {
		return err
	}

	log.Info("Seed run finished", "runID", report.RunID, "seed", report.Seed, "duration", report.Duration())
	return nil
}

// openRunStore connects the Mongo report store when MONGODB_DSN is set. Any
// failure falls back to the no-op store; the run itself does not depend on it.
func openRunStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.SeedRunRepository, func()) {
	nop := seederRepo.NewNopSeedRunRepository()
	if cfg.MongoURI == "" {
		return nop, func() {}
	}

	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Warn("MongoDB unavailable, run report will not be stored", "error", err)
		return nop, func() {}
	}

	disconnect := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	runs, err := seederRepo.NewMongoSeedRunRepository(ctx, persistence.GetDatabase(mongoClient, cfg.MongoDB))
	if err != nil {
		log.Warn("MongoDB report store unusable, run report will not be stored", "error", err)
		disconnect()
		return nop, func() {}
	}

	return runs, disconnect
}
