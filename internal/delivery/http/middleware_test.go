package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return router
}

func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://giftfinder.example.com"}

	t.Run("sets headers for an allowed origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ignores an unlisted origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("supports wildcard origins", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"http://localhost:*"}))

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight requests with no content", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("throttles a client past its burst", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(1, 1))

		first, _ := http.NewRequest("GET", "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second, _ := http.NewRequest("GET", "/ping", nil)
		second.RemoteAddr = "10.0.0.1:1234"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, second)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(1, 1))

		first, _ := http.NewRequest("GET", "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(httptest.NewRecorder(), first)

		other, _ := http.NewRequest("GET", "/ping", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, other)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health endpoint is exempt", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(1, 1))

		for i := 0; i < 5; i++ {
			req, _ := http.NewRequest("GET", "/health", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("disabled when the limit is zero", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(0, 0))

		for i := 0; i < 5; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestIPLimiters(t *testing.T) {
	t.Run("returns the same limiter for a repeat client", func(t *testing.T) {
		limiters := newIPLimiters(1, 1)

		first := limiters.get("10.0.0.1")
		second := limiters.get("10.0.0.1")
		assert.Same(t, first, second)
		assert.Len(t, limiters.perIP, 1)
	})

	t.Run("sweep evicts idle clients and keeps active ones", func(t *testing.T) {
		limiters := newIPLimiters(1, 1)

		limiters.get("10.0.0.1")
		limiters.get("10.0.0.2")
		limiters.perIP["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTimeout)

		limiters.mu.Lock()
		limiters.sweep(time.Now())
		limiters.mu.Unlock()

		assert.NotContains(t, limiters.perIP, "10.0.0.1")
		assert.Contains(t, limiters.perIP, "10.0.0.2")
	})

	t.Run("get refreshes the client's idle clock", func(t *testing.T) {
		limiters := newIPLimiters(1, 1)

		limiters.get("10.0.0.1")
		limiters.perIP["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTimeout)
		limiters.get("10.0.0.1")

		limiters.mu.Lock()
		limiters.sweep(time.Now())
		limiters.mu.Unlock()

		assert.Contains(t, limiters.perIP, "10.0.0.1")
	})
}
