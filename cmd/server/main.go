package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"poi-be-svc/docs"
	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/config"
	"poi-be-svc/internal/database"
	"poi-be-svc/internal/handler"
	"poi-be-svc/internal/middleware"
	"poi-be-svc/internal/repository"
	"poi-be-svc/internal/scheduler"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
)

// @title POI Backend Service API
// @version 1.0
// @description Navigation menu service for the POI location portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting POI Backend Service...")

	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	appLogger.WithField("driver", cfg.Database.Driver).Info("Database connected successfully")

	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db.DB)
	userMenuRepo := repository.NewUserMenuRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	guard := service.NewMenuGuard(menuRepo, userRepo)
	visibility := service.NewMenuVisibility(menuRepo, userMenuRepo)
	menuService := service.NewMenuService(menuRepo, visibility, guard, appLogger)
	services := handler.Services{
		Menu:       menuService,
		MenuExport: service.NewMenuExportService(menuRepo, appLogger),
		UserMenu:   service.NewUserMenuService(menuRepo, userMenuRepo, userRepo, guard, appLogger),
		Auth:       service.NewAuthService(userRepo, tokens, appLogger),
		User:       service.NewUserService(userRepo, appLogger),
		Dashboard:  service.NewDashboardService(dashboardRepo, appLogger),
	}

	var auditScheduler *scheduler.MenuAuditScheduler
	if cfg.Scheduler.MenuAuditEnabled {
		auditScheduler = scheduler.NewMenuAuditScheduler(menuService, schedulerLogRepo, appLogger, cfg.Scheduler.MenuAuditCronExpression)
		if err := auditScheduler.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start menu audit scheduler")
		}
	}

	router := gin.New()

	router.Use(middleware.CORS(cfg.CORS.AllowedOriginList()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	handler.SetupRoutes(router, services, tokens, appLogger)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if auditScheduler != nil {
		auditScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		appLogger.WithError(err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
