// Package routes defines HTTP routes for the cycling API.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/EliandyDumortier/Cycling-App/internal/authz"
	"github.com/EliandyDumortier/Cycling-App/internal/config"
	"github.com/EliandyDumortier/Cycling-App/internal/handlers"
	"github.com/EliandyDumortier/Cycling-App/internal/middleware"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// Handlers groups everything Setup mounts on the router.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Athlete     *handlers.AthleteHandler
	Performance *handlers.PerformanceHandler
	Stats       *handlers.StatsHandler
	Health      *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. Every protected
// group runs the same pipeline: bearer resolution, then the role
// allow-list check for its operation.
func Setup(router *gin.Engine, cfg *config.Config, authService service.AuthService, h Handlers) {
	router.Use(middleware.Security(middleware.SecurityConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Cycling management API"})
	})
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(authService)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		// Registration accepts anonymous athlete self-registration, so the
		// token is optional; the account service applies the creation gate.
		v1.POST("/users", middleware.OptionalAuth(authService), h.User.Create)
		v1.GET("/users/me", requireAuth, h.Auth.Me)

		athletes := v1.Group("/athletes", requireAuth)
		{
			athletes.POST("", middleware.RequireOperation(authz.OpAthleteCreate), h.Athlete.Create)
			athletes.GET("", middleware.RequireOperation(authz.OpAthleteList), h.Athlete.List)
			athletes.PUT("/:id", middleware.RequireOperation(authz.OpAthleteUpdate), h.Athlete.Update)
			athletes.DELETE("/:id", middleware.RequireOperation(authz.OpAthleteDelete), h.Athlete.Delete)
		}

		performances := v1.Group("/performances", requireAuth)
		{
			performances.POST("", middleware.RequireOperation(authz.OpPerformanceCreate), h.Performance.Create)
			performances.GET("", middleware.RequireOperation(authz.OpPerformanceList), h.Performance.List)
			performances.PUT("/:id", middleware.RequireOperation(authz.OpPerformanceUpdate), h.Performance.Update)
			performances.DELETE("/:id", middleware.RequireOperation(authz.OpPerformanceDelete), h.Performance.Delete)
		}

		stats := v1.Group("/stats", requireAuth, middleware.RequireOperation(authz.OpStatsRead))
		{
			stats.GET("/vo2max", h.Stats.VO2Max)
			stats.GET("/ppo", h.Stats.PPO)
			stats.GET("/weightpower", h.Stats.PowerToWeight)
		}
	}
}
