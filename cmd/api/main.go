package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/infrastructure/database"
	"github.com/waheedcycles/cycleshop-api/internal/infrastructure/repository"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/handler"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/routes"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
	"github.com/waheedcycles/cycleshop-api/pkg/printer"
	"github.com/waheedcycles/cycleshop-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin account
	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	bicycleRepo := repository.NewBicycleRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	bicycleService := service.NewBicycleService(bicycleRepo)
	seedService := service.NewSeedService(bicycleRepo)
	receiptService := service.NewReceiptService(receiptRepo, cfg.Shop)
	analyticsService := service.NewAnalyticsService(receiptRepo, analyticsRepo, cfg.Shop)
	reportService := service.NewReportService(receiptRepo, cfg.Shop)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, receiptRepo, cfg.Shop, cfg.Printer.Type)

	// Initialize handlers
	resolver := period.NewResolver(cfg.Shop.TimezoneOffsetMinutes)
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Bicycle:   handler.NewBicycleHandler(bicycleService),
		Receipt:   handler.NewReceiptHandler(receiptService, printerService, resolver),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Report:    handler.NewReportHandler(reportService),
		Seed:      handler.NewSeedHandler(seedService),
		Upload:    handler.NewUploadHandler(cfg.Storage),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
