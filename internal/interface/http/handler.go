package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/internal/domain/catalog"
	"github.com/yanqian/culture-compass/internal/domain/chat"
	"github.com/yanqian/culture-compass/internal/domain/itinerary"
	"github.com/yanqian/culture-compass/internal/domain/recommendation"
	"github.com/yanqian/culture-compass/internal/domain/user"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

const resetMessage = "AI service availability reset"

// Handler wires the HTTP transport to domain services.
type Handler struct {
	advisorSvc        advisor.Service
	recommendationSvc recommendation.Service
	chatSvc           chat.Service
	itinerarySvc      itinerary.Service
	userSvc           user.Service
	catalog           catalog.Catalog
	logger            *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	advisorSvc advisor.Service,
	recommendationSvc recommendation.Service,
	chatSvc chat.Service,
	itinerarySvc itinerary.Service,
	userSvc user.Service,
	cat catalog.Catalog,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		advisorSvc:        advisorSvc,
		recommendationSvc: recommendationSvc,
		chatSvc:           chatSvc,
		itinerarySvc:      itinerarySvc,
		userSvc:           userSvc,
		catalog:           cat,
		logger:            logger.With("component", "http.handler"),
	}
}

// Recommend matches the catalog against the caller's preferences.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendation.Request
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.recommendationSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Chat answers one conversational turn.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.chatSvc.Send(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChatHistory lists a user's stored chat turns.
func (h *Handler) ChatHistory(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	messages, err := h.chatSvc.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type insightsRequest struct {
	Destination string   `json:"destination"`
	Preferences []string `json:"preferences"`
}

// CulturalInsights returns short destination tips.
func (h *Handler) CulturalInsights(c *gin.Context) {
	var req insightsRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Destination) == "" || req.Preferences == nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, "destination and preferences array are required", nil))
		return
	}

	insights := h.advisorSvc.CulturalInsights(c.Request.Context(), req.Destination, req.Preferences)
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// AIStatus reports provider availability.
func (h *Handler) AIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.advisorSvc.Status())
}

// AIReset restores every configured provider.
func (h *Handler) AIReset(c *gin.Context) {
	h.advisorSvc.Reset()
	h.logger.Info("ai availability reset")
	c.JSON(http.StatusOK, gin.H{"message": resetMessage})
}

type preferencesRequest struct {
	Preferences []string `json:"preferences"`
}

// AnalyzePreferences buckets preference tokens into cultural domains.
func (h *Handler) AnalyzePreferences(c *gin.Context) {
	var req preferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Preferences == nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, "preferences array is required", nil))
		return
	}
	c.JSON(http.StatusOK, h.recommendationSvc.Profile(req.Preferences))
}

// TrendingPreferences lists the most requested preference tokens.
func (h *Handler) TrendingPreferences(c *gin.Context) {
	trending, err := h.recommendationSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": trending})
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, name+" must be a positive integer", err))
		return 0, false
	}
	return id, true
}
