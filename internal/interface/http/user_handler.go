package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpdateUserPreferences stores a user's preference tokens.
func (h *Handler) UpdateUserPreferences(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req preferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userSvc.UpdatePreferences(c.Request.Context(), userID, req.Preferences); err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UserPreferences returns a user's stored preference tokens.
func (h *Handler) UserPreferences(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	prefs, err := h.userSvc.Preferences(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs.Preferences})
}

