package booking

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "gatherspace/database/repository/booking"
	userRepo "gatherspace/database/repository/user"
	"gatherspace/models"
	"gatherspace/services/venue"
)

// BookingSessionService defines the interface for the stateful booking wizard.
type BookingSessionService interface {
	StartSession(ctx context.Context, venueID, userID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateDraft(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.BookingSession, error)
	NextStep(ctx context.Context, sessionID string) (*models.BookingSession, error)
	PrevStep(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
	Quote(venueID string, draft models.BookingDraft) (models.PricingSnapshot, error)
	GetBooking(reference string) (*models.Booking, error)
	ListUserBookings(userID string) ([]models.Booking, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Catalog    venue.Service
	Store      SessionStore
	Bookings   bookingRepo.BookingRepository
	Users      userRepo.UserRepository
	TaskClient *asynq.Client
	SessionTTL time.Duration
	Logger     *zap.Logger
}

const defaultSessionTTL = 30 * time.Minute

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return defaultSessionTTL
	}
	return s.SessionTTL
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
