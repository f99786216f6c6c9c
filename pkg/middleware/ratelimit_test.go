package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedRouter(t *testing.T, config RateLimiterConfig) (*gin.Engine, *RateLimiter) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(config)
	t.Cleanup(limiter.Stop)

	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r, limiter
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	r, _ := newLimitedRouter(t, RateLimiterConfig{
		Rate:            rate.Limit(1),
		Burst:           3,
		CleanupInterval: time.Minute,
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	r, _ := newLimitedRouter(t, RateLimiterConfig{
		Rate:            rate.Limit(0.001),
		Burst:           1,
		CleanupInterval: time.Minute,
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

// The limiter runs before auth in the middleware chain, so distinct
// bearer tokens from one IP must still land in separate buckets.
func TestRateLimiterKeysByBearerToken(t *testing.T) {
	r, limiter := newLimitedRouter(t, RateLimiterConfig{
		Rate:            rate.Limit(0.001),
		Burst:           1,
		CleanupInterval: time.Minute,
	})

	// With a burst of 1, a shared bucket would reject the second token's
	// first request. Both passing means each token got its own bucket.
	for _, token := range []string{"token-a", "token-b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, limiter.Count())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer token-a")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterAnonymousFallsBackToIP(t *testing.T) {
	r, limiter := newLimitedRouter(t, RateLimiterConfig{
		Rate:            rate.Limit(0.001),
		Burst:           1,
		CleanupInterval: time.Minute,
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	// Same IP, no credentials: shares the bucket.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, 1, limiter.Count())
}
