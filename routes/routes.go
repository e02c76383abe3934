package routes

import (
	"net/http"
	"time"

	"luxesalon/handlers"
	"luxesalon/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.Register)
		api.POST("/login/code", hb.Users.RequestLoginCode)
		api.POST("/login/verify", hb.Users.VerifyLoginCode)
	}
}

// RegisterUserRoutes registers authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/me", hb.Users.GetProfile)
		api.PUT("/me", hb.Users.UpdateProfile)
		api.PUT("/me/phone", hb.Users.ChangePhone)
		api.POST("/logout", hb.Users.Logout)
	}
}

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/providers", hb.Catalog.ListProviders)
		api.GET("/outlets", hb.Catalog.ListOutlets)
		api.GET("/calendar", hb.Catalog.Calendar)
	}
}

// RegisterReservationRoutes registers the committed-collection endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Reservations.ListReservations)
		api.DELETE("/:id", hb.Reservations.CancelReservation)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Notifications.ListNotifications)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
