package routes

import (
	"fmt"
	"time"

	"sustainshare-api/config"
	"sustainshare-api/handlers"
	"sustainshare-api/middleware"
	"sustainshare-api/models"
	"sustainshare-api/repository"
	"sustainshare-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a fresh engine.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	ttl, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid token ttl %q: %w", cfg.Auth.TokenTTL, err)
	}
	tokens := middleware.NewTokenIssuer(cfg.Auth.JWTSecret, ttl)
	metrics := middleware.NewMetrics()

	userService := services.NewUserService(repository.NewUserRepository(db))
	foodService := services.NewFoodItemService(repository.NewFoodItemRepository(db))
	pickupService := services.NewPickupService(repository.NewPickupRepository(db))
	donationService := services.NewDonationLogService(repository.NewDonationLogRepository(db))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.Server.CORSOrigins),
		metrics.Middleware(),
	)

	health := handlers.NewHealthHandler(db)
	r.GET("/", handlers.Welcome)
	r.GET("/health", health.Health)
	r.GET("/health/ready", health.Ready)
	r.GET("/metrics", metrics.Handler())

	SetupRoutes(r, Handlers{
		Auth:      handlers.NewAuthHandler(userService, tokens, logger),
		Users:     handlers.NewUserHandler(userService, logger),
		Food:      handlers.NewFoodHandler(foodService, logger),
		Pickups:   handlers.NewPickupHandler(pickupService, logger),
		Donations: handlers.NewDonationHandler(donationService, logger),
	}, tokens, cfg.Auth.EnforceRoles)

	return r, nil
}

type Handlers struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Food      *handlers.FoodHandler
	Pickups   *handlers.PickupHandler
	Donations *handlers.DonationHandler
}

// SetupRoutes registers the /api routes. With enforceRoles set, user
// management requires an ADMIN token.
func SetupRoutes(r *gin.Engine, h Handlers, tokens *middleware.TokenIssuer, enforceRoles bool) {
	api := r.Group("/api")
	api.GET("/statuses", handlers.Statuses)

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/verify", h.Auth.Verify)
		auth.GET("/me", middleware.AuthRequired(tokens), h.Auth.Me)
	}

	// ── Food items ─────────────────────────────────────────────────
	food := api.Group("/food")
	{
		food.POST("", h.Food.Create)
		food.GET("", h.Food.List)
		food.GET("/available", h.Food.ListAvailable)
		food.GET("/donor/:donorId", h.Food.ListByDonor)
		food.GET("/category/:category", h.Food.ListByCategory)
		food.GET("/status/:status", h.Food.ListByStatus)
		food.GET("/search", h.Food.Search)
		food.GET("/expiring", h.Food.ListExpiring)
		food.GET("/stats", h.Food.Stats)
		food.GET("/:id", h.Food.Get)
		food.PUT("/:id", h.Food.Update)
		food.PUT("/:id/status", h.Food.UpdateStatus)
		food.PUT("/:id/claim", h.Food.Claim)
		food.DELETE("/:id", h.Food.Delete)
	}

	// ── Pickups ────────────────────────────────────────────────────
	pickups := api.Group("/pickups")
	{
		pickups.POST("", h.Pickups.Schedule)
		pickups.GET("", h.Pickups.List)
		pickups.GET("/charity/:charityId", h.Pickups.ListByCharity)
		pickups.GET("/status/:status", h.Pickups.ListByStatus)
		pickups.GET("/food/:foodId", h.Pickups.ListByFoodItem)
		pickups.GET("/scheduled", h.Pickups.ListScheduled)
		pickups.GET("/today", h.Pickups.ListToday)
		pickups.GET("/upcoming", h.Pickups.ListUpcoming)
		pickups.GET("/search", h.Pickups.Search)
		pickups.GET("/stats", h.Pickups.Stats)
		pickups.GET("/:id", h.Pickups.Get)
		pickups.PUT("/:id", h.Pickups.Update)
		pickups.PUT("/:id/status", h.Pickups.UpdateStatus)
		pickups.POST("/:id/complete", h.Pickups.Complete)
		pickups.POST("/:id/cancel", h.Pickups.Cancel)
		pickups.DELETE("/:id", h.Pickups.Delete)
	}

	// ── Users ──────────────────────────────────────────────────────
	users := api.Group("/users")
	if enforceRoles {
		users.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin))
	}
	{
		users.GET("", h.Users.List)
		users.GET("/stats", h.Users.Stats)
		users.GET("/role/:role", h.Users.ListByRole)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", h.Users.Update)
		users.PUT("/:id/role", h.Users.UpdateRole)
		users.POST("/:id/activate", h.Users.Activate)
		users.POST("/:id/deactivate", h.Users.Deactivate)
		users.DELETE("/:id", h.Users.Delete)
	}

	// ── Donation log ───────────────────────────────────────────────
	donations := api.Group("/donations")
	{
		donations.POST("", h.Donations.Create)
		donations.GET("", h.Donations.List)
		donations.GET("/:id", h.Donations.Get)
		donations.DELETE("/:id", h.Donations.Delete)
	}
}
