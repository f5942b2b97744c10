package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/middleware"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
	"poi-be-svc/pkg/utils"
)

// Services groups what the HTTP layer calls into
type Services struct {
	Menu       service.MenuService
	MenuExport service.MenuExportService
	UserMenu   service.UserMenuService
	Auth       service.AuthService
	User       service.UserService
	Dashboard  service.DashboardService
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, services Services, tokens middleware.TokenVerifier, logger *logger.Logger) {
	utils.RegisterValidators()

	// Initialize handlers
	menuHandler := NewMenuHandler(services.Menu, services.MenuExport, logger)
	userMenuHandler := NewUserMenuHandler(services.UserMenu, logger)
	authHandler := NewAuthHandler(services.Auth, logger)
	userHandler := NewUserHandler(services.User, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)

	authenticate := middleware.Authenticate(tokens)
	managers := middleware.Authorize(auth.ManagementRoles...)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", HealthCheck)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", HealthCheck)

		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authenticate, userHandler.GetMe)
		}

		// Menu routes
		menus := v1.Group("/menus")
		{
			menus.GET("", middleware.OptionalAuthenticate(tokens), menuHandler.GetMenuTree)
			menus.GET("/all", authenticate, managers, menuHandler.GetAllMenus)
			menus.GET("/export", authenticate, managers, menuHandler.ExportMenus)
			menus.GET("/audit", authenticate, middleware.Authorize(auth.RoleAdmin), menuHandler.AuditMenus)
			menus.GET("/:id", menuHandler.GetMenu)
			menus.POST("", authenticate, managers, menuHandler.CreateMenu)
			menus.PUT("/:id", authenticate, managers, menuHandler.UpdateMenu)
			menus.DELETE("/:id", authenticate, managers, menuHandler.DeleteMenu)
		}

		// User menu assignment routes
		userMenus := v1.Group("/user-menus", authenticate, managers)
		{
			userMenus.GET("/users", userMenuHandler.ListUsers)
			userMenus.POST("/assign-global", userMenuHandler.AssignGlobal)
			userMenus.GET("/user/:userId", userMenuHandler.GetUserMenus)
			userMenus.POST("/user/:userId", userMenuHandler.AssignUserMenus)
			userMenus.POST("/user/:userId/menu", userMenuHandler.CreateUserMenu)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard", authenticate, managers)
		{
			dashboard.GET("/menu-statistics", dashboardHandler.GetMenuStatistics)
		}
	}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "POI Backend Service",
	})
}
