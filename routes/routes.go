package routes

import (
	"time"

	"restodir-backend/handlers"
	"restodir-backend/middleware"
	"restodir-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	directory := services.NewDirectoryService(db)
	admin := services.NewAdminService(db)

	restaurantHandler := &handlers.RestaurantHandler{Directory: directory}
	adminHandler := &handlers.AdminHandler{DB: db, Admin: admin, Directory: directory}

	audit := middleware.AuditMiddleware(db)

	// Public directory surface, audited
	public := r.Group("", audit)
	{
		public.GET("/search", restaurantHandler.Search)
		public.GET("/open", restaurantHandler.GetOpenNow)
		public.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
	}

	// The shared-password login gets a per-IP limiter on top of the audit trail
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	r.POST("/admin/login", audit, loginLimiter.Middleware(), adminHandler.Login)

	// Admin surface: audited, then authenticated, then role-gated
	adminGroup := r.Group("/admin", audit)
	adminGroup.Use(middleware.AuthMiddleware())
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.GET("/restaurants", adminHandler.ListRestaurants)
		adminGroup.GET("/restaurants/:id", adminHandler.GetRestaurant)
		adminGroup.POST("/restaurants", adminHandler.CreateRestaurant)
		adminGroup.PUT("/restaurants/:id", adminHandler.UpdateRestaurant)
		adminGroup.DELETE("/restaurants/:id", adminHandler.DeleteRestaurant)
		adminGroup.GET("/audit-logs", adminHandler.GetAuditLogs)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
