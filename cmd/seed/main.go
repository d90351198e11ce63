// Command seed applies migrations and seeds the achievement catalog without
// starting the server. The server does the same on boot; this exists for
// provisioning a database ahead of a deploy.
package main

import (
	"context"
	"log"

	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	achRepo := repository.NewAchievementRepository(db, appLogger)
	achService := service.NewAchievementService(achRepo, appLogger)

	if err := achService.SeedCatalog(ctx); err != nil {
		appLogger.Fatal("Failed to seed achievement catalog", zap.Error(err))
	}

	appLogger.Info("Database seeding completed")
}
