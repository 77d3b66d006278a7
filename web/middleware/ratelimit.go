package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/logger"
	"github.com/edugestion/sgc-api/web/entity"
)

// RateLimitConfig configures rate limiting
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	KeyFunc     func(c *gin.Context) string
	SkipPaths   []string // Paths to skip rate limiting
}

// DefaultRateLimitConfig returns default rate limit config
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 100,
		Window:      15 * time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		SkipPaths: []string{"/api/health"},
	}
}

// shouldSkip checks if path should be skipped
func (config RateLimitConfig) shouldSkip(path string) bool {
	for _, skipPath := range config.SkipPaths {
		if len(path) >= len(skipPath) && path[:len(skipPath)] == skipPath {
			return true
		}
	}
	return false
}

type rateWindow struct {
	count       int
	windowStart time.Time
}

// rateCounter tracks per-key request counts within a fixed window.
type rateCounter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
}

// hit records one request for key and returns the count inside the current
// window together with the moment the window resets.
func (r *rateCounter) hit(key string, window time.Duration) (int, time.Time) {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[key]
	if !ok || now.Sub(w.windowStart) >= window {
		w = &rateWindow{windowStart: now}
		r.windows[key] = w
	}
	w.count++

	// Drop stale windows opportunistically so the map stays bounded.
	if len(r.windows) > 10000 {
		for k, stale := range r.windows {
			if now.Sub(stale.windowStart) >= window {
				delete(r.windows, k)
			}
		}
	}

	return w.count, w.windowStart.Add(window)
}

// RateLimitMiddleware creates rate limiting middleware with an in-process
// fixed-window counter per client key.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	counter := &rateCounter{windows: make(map[string]*rateWindow)}

	return func(c *gin.Context) {
		if config.shouldSkip(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := config.KeyFunc(c)
		count, reset := counter.hit(key, config.Window)

		if count > config.MaxRequests {
			logger.Warningf("Rate limit exceeded for %s on %s (count: %d)", key, c.Request.URL.Path, count)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, entity.ErrorMsg{
				Error: "Demasiadas peticiones desde esta IP, intenta de nuevo más tarde.",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.MaxRequests-count))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		c.Next()
	}
}
