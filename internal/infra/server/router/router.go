// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/integration/entrypoint/controller"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	userController       *controller.UserController
	ledgerController     *controller.LedgerController
	categoryController   *controller.CategoryController
	billController       *controller.BillController
	statisticsController *controller.StatisticsController
	groupController      *controller.GroupController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	ledgerController *controller.LedgerController,
	categoryController *controller.CategoryController,
	billController *controller.BillController,
	statisticsController *controller.StatisticsController,
	groupController *controller.GroupController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		userController:       userController,
		ledgerController:     ledgerController,
		categoryController:   categoryController,
		billController:       billController,
		statisticsController: statisticsController,
		groupController:      groupController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PATCH("/me", r.userController.UpdateProfile)
				users.PUT("/me/password", r.userController.ChangePassword)
			}
		}

		if r.ledgerController != nil && r.authMiddleware != nil {
			ledgers := v1.Group("/ledgers")
			ledgers.Use(r.authMiddleware.Authenticate())
			{
				ledgers.GET("", r.ledgerController.List)
				ledgers.POST("", r.ledgerController.Create)
				ledgers.GET("/:id", r.ledgerController.Get)
				ledgers.PATCH("/:id", r.ledgerController.Update)
				ledgers.DELETE("/:id", r.ledgerController.Delete)

				// Bill listing and statistics are scoped to a ledger
				if r.billController != nil {
					ledgers.GET("/:id/bills", r.billController.List)
				}
				if r.statisticsController != nil {
					ledgers.GET("/:id/statistics", r.statisticsController.Get)
					ledgers.GET("/:id/statistics/category", r.statisticsController.GetByCategory)
					ledgers.GET("/:id/statistics/trend", r.statisticsController.GetTrend)
				}
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.POST("", r.billController.Create)
				bills.GET("/:id", r.billController.Get)
				bills.PATCH("/:id", r.billController.Update)
				bills.DELETE("/:id", r.billController.Delete)
			}
		}

		if r.groupController != nil && r.authMiddleware != nil {
			groups := v1.Group("/groups")
			groups.Use(r.authMiddleware.Authenticate())
			{
				groups.GET("", r.groupController.List)
				groups.POST("", r.groupController.Create)
				groups.POST("/join", r.groupController.Join)
				groups.GET("/:id", r.groupController.Get)
				groups.PATCH("/:id", r.groupController.Update)
				groups.DELETE("/:id", r.groupController.Delete)
				groups.POST("/:id/leave", r.groupController.Leave)
				groups.DELETE("/:id/members/:userId", r.groupController.RemoveMember)
				groups.PUT("/:id/members/:userId/role", r.groupController.ChangeMemberRole)
				groups.POST("/:id/transfer", r.groupController.TransferOwnership)
				groups.POST("/:id/invite-code/reset", r.groupController.ResetInviteCode)
			}
		}
	}
}
