package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

// Destinations lists every destination.
func (h *Handler) Destinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Destinations())
}

// Destination returns one destination by id.
func (h *Handler) Destination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dest, found := h.catalog.Destination(id)
	if !found {
		abortWithError(c, NewHTTPError(http.StatusNotFound, apperrors.CodeNotFound, "destination not found", nil))
		return
	}
	c.JSON(http.StatusOK, dest)
}

// DestinationsByRegion filters destinations by region name.
func (h *Handler) DestinationsByRegion(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.DestinationsByRegion(c.Param("region")))
}

// SitesByDestination lists the cultural sites of a destination.
func (h *Handler) SitesByDestination(c *gin.Context) {
	id, ok := pathID(c, "destinationId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.catalog.SitesByDestination(id))
}

// SitesByCategory filters cultural sites by category.
func (h *Handler) SitesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.SitesByCategory(c.Param("category")))
}

// RestaurantsByDestination lists the restaurants of a destination.
func (h *Handler) RestaurantsByDestination(c *gin.Context) {
	id, ok := pathID(c, "destinationId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.catalog.RestaurantsByDestination(id))
}

// RestaurantsByCuisine filters restaurants by cuisine.
func (h *Handler) RestaurantsByCuisine(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.RestaurantsByCuisine(c.Param("cuisine")))
}

// Regions lists the curated regions.
func (h *Handler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Regions())
}
