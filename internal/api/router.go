package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emplacadora/emplacadora-api/internal/api/handler"
	"github.com/emplacadora/emplacadora-api/internal/api/middleware"
	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/service"
	"github.com/emplacadora/emplacadora-api/internal/infrastructure/config"
	mongodb "github.com/emplacadora/emplacadora-api/internal/infrastructure/db/mongo"
	redisdb "github.com/emplacadora/emplacadora-api/internal/infrastructure/db/redis"
	"github.com/emplacadora/emplacadora-api/internal/infrastructure/fipe"
	"github.com/emplacadora/emplacadora-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("emplacadora"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	layoutRepo := mongodb.NewDashboardRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	sellerRepo := mongodb.NewSellerRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	fipeCache := redisdb.NewFipeCache(rdb, cfg.Fipe.CacheTTL)

	sessionService := service.NewSessionService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	dashboardService := service.NewDashboardService(layoutRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	sellerService := service.NewSellerService(sellerRepo, log)
	catalogClient := fipe.NewClient(cfg.Fipe.BaseURL, fipeCache, log)

	sessionHandler := handler.NewSessionHandler(sessionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	orderHandler := handler.NewOrderHandler(orderService)
	sellerHandler := handler.NewSellerHandler(sellerService)
	catalogHandler := handler.NewCatalogHandler(catalogClient)

	authRequired := middleware.Auth(sessionService)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSeller)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	// 10 attempts per minute per IP on login.
	loginLimit := middleware.LoginRateLimit(rate.Limit(10.0/60.0), 10)
	e.POST("/v1/auth/login", sessionHandler.Login, loginLimit)
	e.GET("/v1/auth/session", sessionHandler.Session)
	e.POST("/v1/auth/logout", sessionHandler.Logout)

	// --- Dashboard layout (any authenticated role) ---
	e.GET("/v1/dashboard/layout", dashboardHandler.GetLayout, authRequired)
	e.PUT("/v1/dashboard/layout", dashboardHandler.SaveLayout, authRequired)

	// --- Orders ---
	e.POST("/v1/orders", orderHandler.Create, authRequired)
	e.GET("/v1/orders", orderHandler.List, authRequired)
	e.GET("/v1/orders/:number", orderHandler.Get, authRequired)
	e.PATCH("/v1/orders/:number/status", orderHandler.UpdateStatus, authRequired, staffOnly)

	// --- Sellers (admin only) ---
	e.POST("/v1/sellers", sellerHandler.Create, authRequired, adminOnly)
	e.GET("/v1/sellers", sellerHandler.List, authRequired, adminOnly)
	e.GET("/v1/sellers/:id", sellerHandler.Get, authRequired, adminOnly)

	// --- Vehicle catalog (any authenticated role) ---
	e.GET("/v1/catalog/:category/brands", catalogHandler.Brands, authRequired)
	e.GET("/v1/catalog/:category/brands/:brand/models", catalogHandler.Models, authRequired)
	e.GET("/v1/catalog/:category/brands/:brand/models/:model/years", catalogHandler.Years, authRequired)

	// --- Demo bootstrap (opt-in) ---
	if cfg.EnableDemoBootstrap {
		bootstrapService := service.NewBootstrapService(userRepo, log)
		bootstrapHandler := handler.NewBootstrapHandler(bootstrapService)
		e.POST("/v1/bootstrap/demo-users", bootstrapHandler.DemoUsers)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
