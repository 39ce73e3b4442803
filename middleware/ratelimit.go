package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultRateLimit = 120

// IPRateLimiter applies a sliding-window request limit per client IP.
// Idle IPs are swept from the map once per window so the state does
// not grow with every client ever seen.
type IPRateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	lastSweep time.Time
}

func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	kept := rl.requests[ip]
	for len(kept) > 0 && !kept[0].After(cutoff) {
		kept = kept[1:]
	}

	if len(kept) >= rl.limit {
		rl.requests[ip] = kept
		return false
	}

	rl.requests[ip] = append(kept, now)
	return true
}

// sweep drops every IP whose newest request fell out of the window.
// Caller holds rl.mu.
func (rl *IPRateLimiter) sweep(cutoff time.Time) {
	for ip, reqs := range rl.requests {
		if len(reqs) == 0 || !reqs[len(reqs)-1].After(cutoff) {
			delete(rl.requests, ip)
		}
	}
}

var (
	limiterOnce sync.Once
	ipLimiter   *IPRateLimiter
)

// RateLimitMiddleware limits each IP to RATE_LIMIT_PER_MINUTE requests
// per minute, defaulting to 120. The limiter is built on first use so
// the env var is read after .env loading.
func RateLimitMiddleware() gin.HandlerFunc {
	limiterOnce.Do(func() {
		limit := defaultRateLimit
		if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		ipLimiter = NewIPRateLimiter(limit, time.Minute)
	})

	return func(c *gin.Context) {
		if !ipLimiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
