package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorconsulting/diagnosis-engine/internal/monitoring"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("key", []byte("value"))

	got, found := c.Get("key")
	require.True(t, found)
	assert.Equal(t, []byte("value"), got)
}

func TestCache_GetMissing(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get("nope")

	assert.False(t, found)
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("key", []byte("value"))
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Zero(t, c.Size())
}

func TestCache_Stats(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", []byte("1"))

	stats := c.Stats()

	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, float64(60), stats["ttl_seconds"])
}

func cachedRouter(c *Cache, metrics *monitoring.Metrics, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(c.Middleware(metrics))
	r.GET("/themes", func(ctx *gin.Context) {
		*hits++
		ctx.JSON(http.StatusOK, gin.H{"serial": *hits})
	})
	r.POST("/diagnose", func(ctx *gin.Context) {
		*hits++
		ctx.JSON(http.StatusOK, gin.H{"serial": *hits})
	})
	return r
}

func TestMiddleware_CachesThemeCatalog(t *testing.T) {
	handlerHits := 0
	metrics := monitoring.NewMetrics()
	r := cachedRouter(NewCache(time.Minute), metrics, &handlerHits)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/themes", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/themes", nil))

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, handlerHits)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestMiddleware_NeverCachesSubmissions(t *testing.T) {
	handlerHits := 0
	metrics := monitoring.NewMetrics()
	r := cachedRouter(NewCache(time.Minute), metrics, &handlerHits)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/diagnose", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf("%d", i+1))
	}

	assert.Equal(t, 3, handlerHits)
}

func TestMiddleware_DistinctThemePathsCachedSeparately(t *testing.T) {
	handlerHits := 0
	metrics := monitoring.NewMetrics()

	gin.SetMode(gin.TestMode)
	c := NewCache(time.Minute)
	r := gin.New()
	r.Use(c.Middleware(metrics))
	r.GET("/themes/:id", func(ctx *gin.Context) {
		handlerHits++
		ctx.JSON(http.StatusOK, gin.H{"id": ctx.Param("id")})
	})

	for _, path := range []string{"/themes/factory", "/themes/sales", "/themes/factory"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2, handlerHits)
}
