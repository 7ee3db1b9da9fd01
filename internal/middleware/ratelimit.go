package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long an IP may stay quiet before its limiter is
	// eligible for eviction.
	limiterIdleTTL = 10 * time.Minute
	// limiterSweepSize triggers an eviction sweep once the map holds this
	// many entries, keeping memory bounded on unauthenticated routes.
	limiterSweepSize = 4096
)

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*ipLimiter

	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	sweepSize int
	now       func() time.Time
}

func newIPRateLimiter(r rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients:   make(map[string]*ipLimiter),
		rate:      r,
		burst:     burst,
		idleTTL:   limiterIdleTTL,
		sweepSize: limiterSweepSize,
		now:       time.Now,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= l.sweepSize {
			l.sweep()
		}
		entry = &ipLimiter{lim: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = l.now()
	return entry.lim.Allow()
}

// sweep drops limiters for IPs idle longer than idleTTL. Caller holds mu.
func (l *ipRateLimiter) sweep() {
	cutoff := l.now().Add(-l.idleTTL)
	for ip, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// RateLimit returns per-client-IP rate limiting middleware. It fronts the AI
// routes, which each cost an upstream LLM call.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(r, burst)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
