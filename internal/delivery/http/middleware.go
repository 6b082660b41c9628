package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORSMiddleware handles CORS for the browser frontend
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is allowed
		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		// Support wildcard matching like http://localhost:*
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

const (
	// limiterIdleTimeout is how long an IP's limiter may sit unused before it
	// is eligible for eviction
	limiterIdleTimeout = 10 * time.Minute

	// limiterSweepSize is the map size at which inserting a new IP triggers a
	// sweep of idle limiters
	limiterSweepSize = 1024
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters tracks one token-bucket limiter per client IP. Idle entries are
// swept when the map grows past limiterSweepSize so it cannot grow without
// bound under churning client addresses.
type ipLimiters struct {
	mu    sync.Mutex
	perIP map[string]*clientLimiter
	rate  rate.Limit
	burst int
}

func newIPLimiters(perSecond, burst int) *ipLimiters {
	return &ipLimiters{
		perIP: make(map[string]*clientLimiter),
		rate:  rate.Limit(perSecond),
		burst: burst,
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.perIP[ip]
	if !ok {
		if len(l.perIP) >= limiterSweepSize {
			l.sweep(now)
		}
		entry = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.perIP[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops limiters idle longer than limiterIdleTimeout. Caller holds mu.
func (l *ipLimiters) sweep(now time.Time) {
	for ip, entry := range l.perIP {
		if now.Sub(entry.lastSeen) > limiterIdleTimeout {
			delete(l.perIP, ip)
		}
	}
}

// RateLimitMiddleware throttles requests per client IP. The health endpoint
// is exempt so monitoring is never throttled.
func RateLimitMiddleware(perSecond int, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = perSecond
	}

	limiters := newIPLimiters(perSecond, burst)

	return func(c *gin.Context) {
		if c.FullPath() == "/health" {
			c.Next()
			return
		}

		if !limiters.get(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, please try again later",
			})
			return
		}

		c.Next()
	}
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
