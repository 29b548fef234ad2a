package routes

import (
	"github.com/gin-gonic/gin"

	"gatherspace/middleware"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		// Session endpoints accept anonymous drafts; a bearer token, when
		// present, prefills contact details and attributes the booking.
		booking.Use(middleware.JWTAuthMiddleware(true))
		booking.POST("/session", hb.Booking.StartSession)
		booking.GET("/session/:sessionID", hb.Booking.GetSession)
		booking.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		booking.POST("/session/:sessionID/next", hb.Booking.NextStep)
		booking.POST("/session/:sessionID/prev", hb.Booking.PrevStep)
		booking.POST("/session/:sessionID/submit", hb.Booking.Submit)
		booking.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		booking.POST("/quote", hb.Booking.Quote)
	}

	bookings := r.Group("/api/bookings")
	{
		// The confirmation page works without an account; the reference is
		// the only key a guest holds.
		bookings.GET("/:reference", hb.Booking.GetBooking)
		bookings.GET("", middleware.JWTAuthMiddleware(false), hb.Booking.ListMyBookings)
	}
}
