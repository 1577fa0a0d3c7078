package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorconsulting/diagnosis-engine/internal/monitoring"
)

func limitedRouter(config RateLimitConfig, metrics *monitoring.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(config, metrics).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	r := limitedRouter(RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             3,
		ClientTTL:         time.Minute,
	}, nil)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	metrics := monitoring.NewMetrics()
	r := limitedRouter(RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             2,
		ClientTTL:         time.Minute,
	}, metrics)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])

	stats := metrics.GetStats()
	assert.GreaterOrEqual(t, stats["rate_limit_blocks"].(int64), int64(1))
}

func TestRateLimiter_SetsRetryAfterHeader(t *testing.T) {
	r := limitedRouter(RateLimitConfig{
		RequestsPerSecond: 0.1,
		Burst:             1,
		ClientTTL:         time.Minute,
	}, nil)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	r := limitedRouter(RateLimitConfig{
		RequestsPerSecond: 50,
		Burst:             1,
		ClientTTL:         time.Minute,
	}, nil)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, first.Code)

	time.Sleep(50 * time.Millisecond)

	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, third.Code)
}
