package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/waheedcycles/cycleshop-api/internal/config"
	domainRepo "github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/handler"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/middleware"
	"github.com/waheedcycles/cycleshop-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Bicycle   *handler.BicycleHandler
	Receipt   *handler.ReceiptHandler
	Analytics *handler.AnalyticsHandler
	Report    *handler.ReportHandler
	Seed      *handler.SeedHandler
	Upload    *handler.UploadHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Uploaded bicycle images
	router.Static("/uploads", deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/auth/refresh", h.Auth.RefreshToken)
		v1.GET("/bicycles", h.Bicycle.List)
		v1.GET("/bicycles/:id", h.Bicycle.Get)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RequireRole("admin"))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
			BurstSize:         deps.Cfg.RateLimit.Burst,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Catalog management
	protected.POST("/bicycles", h.Bicycle.Create)
	protected.PUT("/bicycles/:id", h.Bicycle.Update)
	protected.DELETE("/bicycles/:id", h.Bicycle.Delete)
	protected.POST("/uploads", h.Upload.Upload)

	// Demo data
	protected.POST("/seed", h.Seed.Seed)
	protected.DELETE("/seed", h.Seed.Clear)

	// Receipts. Creation requires an Idempotency-Key so a retried checkout
	// never produces two receipts.
	idem := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}
	protected.POST("/receipts", middleware.IdempotencyRequired(idem), h.Receipt.Create)
	protected.GET("/receipts", h.Receipt.List)
	protected.GET("/receipts/:id", h.Receipt.Get)
	protected.POST("/receipts/:id/print", h.Receipt.Print)
	protected.GET("/receipts/:id/render", h.Receipt.Render)
	protected.GET("/receipts/:id/share", h.Receipt.Share)

	// Analytics and reports
	protected.GET("/analytics", h.Analytics.Get)
	protected.GET("/reports/export", h.Report.Export)

	// Printer
	protected.GET("/printer/status", h.Printer.Status)
}
