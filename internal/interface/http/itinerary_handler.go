package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
)

// CreateItinerary stores a new itinerary.
func (h *Handler) CreateItinerary(c *gin.Context) {
	var req itinerary.CreateRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.itinerarySvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetItinerary returns one itinerary.
func (h *Handler) GetItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	it, err := h.itinerarySvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, it)
}

type updateItemsRequest struct {
	Items []itinerary.Item `json:"items"`
}

// UpdateItinerary replaces the items of an itinerary.
func (h *Handler) UpdateItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateItemsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.itinerarySvc.UpdateItems(c.Request.Context(), id, req.Items); err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DescribeItinerary returns the narrative paragraph for an itinerary.
func (h *Handler) DescribeItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	description, err := h.itinerarySvc.Describe(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}

// ExportItinerary streams the itinerary as a downloadable document.
func (h *Handler) ExportItinerary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	export, err := h.itinerarySvc.Export(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

// UserItineraries lists the itineraries owned by a user.
func (h *Handler) UserItineraries(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.itinerarySvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": items})
}
