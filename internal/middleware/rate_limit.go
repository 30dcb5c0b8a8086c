package middleware

import (
	"net/http"
	"sync"

	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}
	return limiter
}

var errTooManyRequests = apperror.New(apperror.CodeTooMany, "Too many requests", http.StatusTooManyRequests)

// RateLimitByIP: r = requests per second, b = burst
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Abort(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}

// RateLimitByPrincipal must run after Authenticate; anonymous requests pass.
func RateLimitByPrincipal(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		id := c.GetString(ContextPrincipalID)
		if id == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(id).Allow() {
			response.Abort(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}
