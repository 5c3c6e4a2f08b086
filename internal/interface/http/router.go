package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/culture-compass/internal/infra/config"
	"github.com/yanqian/culture-compass/pkg/util"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		traceIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.CORS),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api")
	{
		api.POST("/recommendations", handler.Recommend)
		api.POST("/chat", handler.Chat)
		api.GET("/chat/history/:userId", handler.ChatHistory)
		api.POST("/cultural-insights", handler.CulturalInsights)
		api.GET("/ai-status", handler.AIStatus)
		api.POST("/ai-reset", handler.AIReset)

		api.GET("/destinations", handler.Destinations)
		api.GET("/destinations/:id", handler.Destination)
		api.GET("/destinations/region/:region", handler.DestinationsByRegion)
		api.GET("/cultural-sites/destination/:destinationId", handler.SitesByDestination)
		api.GET("/cultural-sites/category/:category", handler.SitesByCategory)
		api.GET("/restaurants/destination/:destinationId", handler.RestaurantsByDestination)
		api.GET("/restaurants/cuisine/:cuisine", handler.RestaurantsByCuisine)
		api.GET("/regions", handler.Regions)

		api.POST("/itinerary", handler.CreateItinerary)
		api.GET("/itinerary/:id", handler.GetItinerary)
		api.PUT("/itinerary/:id", handler.UpdateItinerary)
		api.GET("/itinerary/:id/description", handler.DescribeItinerary)
		api.GET("/itinerary/:id/pdf", handler.ExportItinerary)

		api.POST("/user/:id/preferences", handler.UpdateUserPreferences)
		api.GET("/user/:id/preferences", handler.UserPreferences)
		api.GET("/user/:id/itineraries", handler.UserItineraries)

		api.POST("/preferences/analyze", handler.AnalyzePreferences)
		api.GET("/preferences/trending", handler.TrendingPreferences)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", util.MillisSince(start),
			"trace_id", c.GetString(traceIDKey),
		)
	}
}
