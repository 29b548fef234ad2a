// File: gatherspace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gatherspace/config"
	"gatherspace/cron"
	"gatherspace/database"
	bookingRepo "gatherspace/database/repository/booking"
	userRepoPkg "gatherspace/database/repository/user"
	venueRepoPkg "gatherspace/database/repository/venue"
	"gatherspace/handlers"
	"gatherspace/middleware"
	"gatherspace/models"
	"gatherspace/routes"
	"gatherspace/services/booking"
	"gatherspace/services/user"
	"gatherspace/services/venue"
	"gatherspace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// Seed the venue directory and a demo account.
	if err := venue.SeedVenues(venueRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed venue catalog: %v", err)
	}
	seedDemoUser(userRepo, logger)

	// services.
	catalogService := &venue.CatalogService{
		Repo:  venueRepo,
		Cache: venue.NewRedisVenueCache(utils.GetCacheClient()),
	}

	authService := &user.DefaultAuthService{Repo: userRepo}

	taskClient := cron.NewTaskClient()
	bookingService := &booking.DefaultBookingSessionService{
		Catalog:    catalogService,
		Store:      booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Bookings:   bookings,
		Users:      userRepo,
		TaskClient: taskClient,
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Logger:     logger,
	}

	// Start the follow-up worker.
	cron.InitFollowUpWorker(logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Venue:   handlers.NewVenueHandler(catalogService),
		Auth:    handlers.NewAuthHandler(authService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// seedDemoUser ensures a demo account exists in development environments.
func seedDemoUser(repo userRepoPkg.UserRepository, logger *zap.Logger) {
	if config.IsProduction() {
		return
	}
	const demoEmail = "alex.johnson@example.com"
	if _, err := repo.GetByEmail(demoEmail); err == nil {
		return
	}
	hash, err := user.HashPassword("gatherspace-demo")
	if err != nil {
		logger.Sugar().Warnf("main: failed to hash demo password: %v", err)
		return
	}
	demo := &models.User{
		ID:           uuid.New().String(),
		Name:         "Alex Johnson",
		Email:        demoEmail,
		Phone:        "(555) 123-4567",
		Organization: "Johnson & Associates",
		PasswordHash: hash,
	}
	if err := repo.Create(demo); err != nil {
		logger.Sugar().Warnf("main: failed to seed demo user: %v", err)
		return
	}
	logger.Sugar().Infof("main: seeded demo user %s", demoEmail)
}
