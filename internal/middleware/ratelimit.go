// Package middleware holds gin middleware that is not tied to a single
// subsystem.
package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/victorconsulting/diagnosis-engine/internal/errors"
	"github.com/victorconsulting/diagnosis-engine/internal/monitoring"
)

// RateLimitConfig holds configuration for per-client rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	ClientTTL         time.Duration
}

// DefaultRateLimitConfig returns the default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 2,
		Burst:             5,
		ClientTTL:         10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP. State is in-process;
// each instance enforces its own budget.
type RateLimiter struct {
	config  RateLimitConfig
	clients map[string]*clientLimiter
	mutex   sync.Mutex
	metrics *monitoring.Metrics
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop
func NewRateLimiter(config RateLimitConfig, metrics *monitoring.Metrics) *RateLimiter {
	rl := &RateLimiter{
		config:  config,
		clients: make(map[string]*clientLimiter),
		metrics: metrics,
	}

	go rl.cleanup()

	return rl
}

// cleanup evicts limiters for clients not seen within the TTL
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > rl.config.ClientTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mutex.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst),
		}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter
}

// Handler returns the gin middleware enforcing the limit
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitBlock()
			}
			appErr := errors.NewRateLimitError("1s")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}
