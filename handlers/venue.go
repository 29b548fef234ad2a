package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatherspace/models"
	"gatherspace/services/venue"
	"gatherspace/utils"
)

// VenueHandler exposes the venue directory endpoints.
type VenueHandler struct {
	Service venue.Service
}

func NewVenueHandler(svc venue.Service) *VenueHandler {
	return &VenueHandler{Service: svc}
}

// ListVenues returns the directory, narrowed by the optional query filters.
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var filter models.VenueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	venues, err := h.Service.ListVenues(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list venues", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// GetVenueByID returns one venue with its spaces and pricing basis.
func (h *VenueHandler) GetVenueByID(c *gin.Context) {
	v, err := h.Service.GetVenueByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "venue not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, v)
}
