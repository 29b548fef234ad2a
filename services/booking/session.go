// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gatherspace/models"
	"gatherspace/services/tasks"
	"gatherspace/utils"
)

// StartSession creates a new booking session for the venue, seeds the draft
// with defaults (contact details prefilled from the user when known), computes
// the initial pricing, and stores the session with a TTL.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, venueID, userID string) (*models.BookingSession, error) {
	venue, err := s.Catalog.GetVenueByID(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	var user *models.User
	if userID != "" && s.Users != nil {
		if u, err := s.Users.GetByID(userID); err == nil {
			user = u
		}
	}

	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		Venue:       *venue,
		CurrentStep: models.StepEventDetails,
		Draft:       NewBookingDraft(user),
	}
	session.Pricing = ComputePricing(session.Venue, session.Draft)

	if err := s.Store.Save(ctx, session, s.ttl()); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves the current session state.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateDraft applies a tagged draft update, recomputes pricing whole, and
// saves the session. Invalid field values never fail the update; validity is
// reported per step alongside the response.
func (s *DefaultBookingSessionService) UpdateDraft(ctx context.Context, sessionID string, upd models.DraftUpdate) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Draft = ApplyUpdate(session.Draft, upd)
	session.Pricing = ComputePricing(session.Venue, session.Draft)

	if err := s.Store.Save(ctx, session, s.ttl()); err != nil {
		return nil, err
	}
	return session, nil
}

// NextStep advances the wizard by one step. The current step must validate;
// otherwise a StepValidationError reports the unmet fields. Advancing from the
// final step is a no-op.
func (s *DefaultBookingSessionService) NextStep(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Advancing from the final step is a no-op; leaving it requires submit.
	if session.CurrentStep >= models.StepCount {
		return session, nil
	}

	if valid, missing := ValidateStep(session.Venue, session.Draft, session.CurrentStep); !valid {
		return nil, &StepValidationError{Step: session.CurrentStep, Missing: missing}
	}

	session.CurrentStep = nextStep(session.CurrentStep)
	if err := s.Store.Save(ctx, session, s.ttl()); err != nil {
		return nil, err
	}
	return session, nil
}

// PrevStep retreats the wizard by one step, unconditionally. Retreating from
// the first step is a no-op.
func (s *DefaultBookingSessionService) PrevStep(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.CurrentStep = prevStep(session.CurrentStep)
	if err := s.Store.Save(ctx, session, s.ttl()); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit finalizes the booking from the review step. It validates the review
// step, generates the booking reference, persists the booking record, enqueues
// a follow-up task, and deletes the session. The session is terminal after a
// successful submit.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if valid, missing := ValidateStep(session.Venue, session.Draft, models.StepReviewSubmit); !valid {
		return nil, &StepValidationError{Step: models.StepReviewSubmit, Missing: missing}
	}

	booking := &models.Booking{
		Reference: utils.BookingReference(),
		VenueID:   session.Venue.ID,
		VenueName: session.Venue.Name,
		UserID:    session.UserID,
		Draft:     session.Draft,
		Pricing:   session.Pricing,
		Status:    models.BookingStatusRequested,
		CreatedAt: time.Now(),
	}

	if s.Bookings != nil {
		if err := s.Bookings.Create(booking); err != nil {
			return nil, fmt.Errorf("failed to record booking: %w", err)
		}
	}

	s.enqueueFollowUp(booking)

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.logger().Warn("failed to delete submitted booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.logger().Info("booking request submitted",
		zap.String("reference", booking.Reference),
		zap.String("venueID", booking.VenueID),
		zap.Float64("total", booking.Pricing.Total))

	return booking, nil
}

// CancelSession allows the client to explicitly cancel a booking session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// Quote computes pricing for an arbitrary draft against a venue without
// touching any session state.
func (s *DefaultBookingSessionService) Quote(venueID string, draft models.BookingDraft) (models.PricingSnapshot, error) {
	venue, err := s.Catalog.GetVenueByID(venueID)
	if err != nil {
		return models.PricingSnapshot{}, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}
	return ComputePricing(*venue, draft), nil
}

// GetBooking returns a submitted booking by its confirmation reference.
func (s *DefaultBookingSessionService) GetBooking(reference string) (*models.Booking, error) {
	if s.Bookings == nil {
		return nil, fmt.Errorf("booking with reference %s not found", reference)
	}
	return s.Bookings.GetByReference(reference)
}

// ListUserBookings returns the user's submitted bookings, newest first.
func (s *DefaultBookingSessionService) ListUserBookings(userID string) ([]models.Booking, error) {
	if s.Bookings == nil {
		return []models.Booking{}, nil
	}
	return s.Bookings.ListByUser(userID)
}

// enqueueFollowUp schedules the next-day follow-up on the submitted request.
// A missing task client or enqueue failure never fails the submit.
func (s *DefaultBookingSessionService) enqueueFollowUp(booking *models.Booking) {
	if s.TaskClient == nil {
		return
	}
	payload := models.FollowUpPayload{
		Reference: booking.Reference,
		VenueName: booking.VenueName,
		UserID:    booking.UserID,
		EventDate: booking.Draft.Event.PrimaryDate,
	}
	task, opts, err := tasks.NewBookingFollowUpTask(payload, time.Now().Add(24*time.Hour))
	if err != nil {
		s.logger().Warn("failed to build follow-up task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		s.logger().Warn("failed to enqueue follow-up task",
			zap.String("reference", booking.Reference), zap.Error(err))
	}
}

// SessionResponse shapes a session for the wire, attaching per-step validity.
func SessionResponse(session *models.BookingSession) models.BookingSessionResponse {
	return models.BookingSessionResponse{
		SessionID:    session.SessionID,
		VenueID:      session.Venue.ID,
		VenueName:    session.Venue.Name,
		CurrentStep:  session.CurrentStep,
		Draft:        session.Draft,
		Pricing:      session.Pricing,
		StepValidity: StepValidity(session.Venue, session.Draft),
	}
}
