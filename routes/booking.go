package routes

import (
	"luxesalon/handlers"
	"luxesalon/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	booking.Use(middleware.JWTAuthMiddleware())
	{
		booking.POST("/session", hb.Booking.StartSession)
		booking.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		booking.GET("/session/:sessionID/availability", hb.Booking.AvailableTimes)
		booking.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		booking.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}
