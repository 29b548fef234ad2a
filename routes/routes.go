package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gatherspace/handlers"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Venue   *handlers.VenueHandler
	Auth    *handlers.AuthHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gatherspace"})
	})
}

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterVenueRoutes registers the venue directory endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.Venue.ListVenues)
		api.GET("/:id", hb.Venue.GetVenueByID)
	}
}
