package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mfcdist/mfc-sales-api/internal/application/service"
	"github.com/mfcdist/mfc-sales-api/internal/config"
	"github.com/mfcdist/mfc-sales-api/internal/infrastructure/database"
	"github.com/mfcdist/mfc-sales-api/internal/infrastructure/repository"
	"github.com/mfcdist/mfc-sales-api/internal/presentation/http/handler"
	"github.com/mfcdist/mfc-sales-api/internal/presentation/http/routes"
	"github.com/mfcdist/mfc-sales-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo)
	productService := service.NewProductService(productRepo)
	analyticsService := service.NewAnalyticsService(orderRepo, customerRepo, analyticsRepo, cfg.Analytics)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService),
		Order:     handler.NewOrderHandler(orderService),
		Product:   handler.NewProductHandler(productService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
