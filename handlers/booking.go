package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gatherspace/models"
	"gatherspace/services/booking"
	"gatherspace/utils"
)

// BookingHandler exposes the booking wizard session endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// userID returns the authenticated user's ID from the context, if any.
func userID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// StartSession creates a new booking session for a venue.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		VenueID string `json:"venueId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.StartSession(c.Request.Context(), input.VenueID, userID(c))
	if err != nil {
		if errors.Is(err, booking.ErrVenueNotFound) {
			utils.JSONError(c, http.StatusNotFound, "venue not found", input.VenueID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, booking.SessionResponse(session))
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.SessionResponse(session))
}

// UpdateSession applies a tagged draft update and returns the refreshed draft,
// pricing, and per-step validity.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var upd models.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateDraft(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.SessionResponse(session))
}

// NextStep advances the wizard. A blocked transition returns 409 with the
// step's unmet fields.
func (h *BookingHandler) NextStep(c *gin.Context) {
	session, err := h.Service.NextStep(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.SessionResponse(session))
}

// PrevStep retreats the wizard (clamped at step 1).
func (h *BookingHandler) PrevStep(c *gin.Context) {
	session, err := h.Service.PrevStep(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.SessionResponse(session))
}

// Submit finalizes the booking request and returns the confirmation.
func (h *BookingHandler) Submit(c *gin.Context) {
	confirmed, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reference": confirmed.Reference,
		"booking":   confirmed,
		"pricing":   confirmed.Pricing,
	})
}

// GetBooking returns a submitted booking's confirmation by reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	confirmed, err := h.Service.GetBooking(c.Param("reference"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("reference"))
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// CancelSession discards an in-progress booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Quote computes pricing for an arbitrary draft without session state.
func (h *BookingHandler) Quote(c *gin.Context) {
	var input struct {
		VenueID string              `json:"venueId" binding:"required"`
		Draft   models.BookingDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	pricing, err := h.Service.Quote(input.VenueID, input.Draft)
	if err != nil {
		if errors.Is(err, booking.ErrVenueNotFound) {
			utils.JSONError(c, http.StatusNotFound, "venue not found", input.VenueID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": pricing})
}

// ListMyBookings returns the authenticated user's submitted bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(userID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	var stepErr *booking.StepValidationError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &stepErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "step validation failed",
			"step":    stepErr.Step,
			"missing": stepErr.Missing,
		})
	default:
		h.Logger.Error("booking session operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking session operation failed", err.Error())
	}
}
