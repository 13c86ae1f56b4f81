package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// LoginLimiter counts attempts per client IP in a fixed window that starts
// at the first attempt.
type LoginLimiter struct {
	hits   *cache.Cache
	max    int
	window time.Duration
}

func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		hits:   cache.New(window, 2*window),
		max:    max,
		window: window,
	}
}

func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if err := l.hits.Add(key, 1, l.window); err != nil {
			n, err := l.hits.IncrementInt(key, 1)
			if err != nil {
				// the entry expired between Add and IncrementInt
				l.hits.Set(key, 1, l.window)
			} else if n > l.max {
				log.Printf("login_rate_limited client_ip=%s attempts=%d", key, n)
				c.Header("Retry-After", fmt.Sprintf("%.0f", l.window.Seconds()))
				response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many login attempts, please try again later")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
