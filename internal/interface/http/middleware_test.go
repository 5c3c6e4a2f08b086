package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/culture-compass/internal/infra/config"
)

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	ok, _ := limiter.allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)

	ok, wait := limiter.allow("10.0.0.1")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	ok, _ = limiter.allow("10.0.0.2")
	require.True(t, ok, "buckets are per ip")

	now = now.Add(time.Second)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)
}

func TestIPRateLimiterSweepsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 1}, func() time.Time { return now })

	limiter.allow("10.0.0.1")
	now = now.Add(10 * time.Minute)
	limiter.allow("10.0.0.2")

	require.Len(t, limiter.visitors, 1)
	require.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestWithRetrySkipsExcludedPrefixes(t *testing.T) {
	calls := 0
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})
	cfg := config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond, Exclude: []string{"/api/chat", "/api/internal/*"}}
	handler := withRetry(failing, cfg, newTestLogger())

	for _, path := range []string{"/api/chat", "/api/chat/", "/api/internal/jobs"} {
		calls = 0
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Equal(t, 1, calls, path)
	}

	calls = 0
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader(`{}`)))
	require.Equal(t, 3, calls)
}

func TestWithRetryStopsOnNotImplemented(t *testing.T) {
	calls := 0
	handler := withRetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotImplemented)
	}), config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai-reset", nil))
	require.Equal(t, http.StatusNotImplemented, rec.Code)
	require.Equal(t, 1, calls)
}

func TestWaitBackoffHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, waitBackoff(ctx, time.Hour, 2))
	require.True(t, waitBackoff(context.Background(), time.Millisecond, 2))
}
