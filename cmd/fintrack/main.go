package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

// @title Fintrack API
// @version 1.0
// @description Personal finance tracker: ledger, subscriptions, budgets, achievements and premium monthly analysis.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting fintrack service")

	// Initialize database
	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, &cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	subRepo := repository.NewSubscriptionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	achRepo := repository.NewAchievementRepository(db, appLogger)
	orderRepo := repository.NewOrderRepository(db, appLogger)
	feedbackRepo := repository.NewFeedbackRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	achService := service.NewAchievementService(achRepo, appLogger)
	ledgerService := service.NewLedgerService(userRepo, txRepo, achService, appLogger)
	reportService := service.NewReportService(userRepo, txRepo, budgetRepo, appLogger)
	subService := service.NewSubscriptionService(subRepo, achService, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, achService, appLogger)
	paymentService := service.NewPaymentService(userRepo, orderRepo, cfg.Payment.PremiumPrice, appLogger)
	exportService := service.NewExportService(txRepo, appLogger)
	profileService := service.NewProfileService(userRepo, txRepo, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, appLogger)

	// Seed the achievement catalog; safe to repeat across restarts.
	if err := achService.SeedCatalog(ctx); err != nil {
		appLogger.Fatal("Failed to seed achievement catalog", zap.Error(err))
	}

	// Initialize handlers
	h := &api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, appLogger),
		Transaction:  handlers.NewTransactionHandler(ledgerService, exportService, appLogger),
		Report:       handlers.NewReportHandler(reportService, appLogger),
		Subscription: handlers.NewSubscriptionHandler(subService, appLogger),
		Budget:       handlers.NewBudgetHandler(budgetService, appLogger),
		Achievement:  handlers.NewAchievementHandler(achService, appLogger),
		Payment:      handlers.NewPaymentHandler(paymentService, appLogger),
		Profile:      handlers.NewProfileHandler(profileService, feedbackService, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
