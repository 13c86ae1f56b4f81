package middleware

import (
	"net/http"
	"strings"

	"portfolio/internal/modules/activity"
	"portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth.
const (
	CtxAdminID  = "admin_id"
	CtxUsername = "username"
)

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth accepts the token from an Authorization: Bearer header or, when
// the header is absent, from the session cookie.
func JWTAuth(tokens tokenValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw string
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
				c.Abort()
				return
			}
			raw = strings.TrimSpace(parts[1])
		} else if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			raw = cookie
		}

		if raw == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(raw)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		adminID := claims.AdminID
		c.Set(CtxAdminID, adminID)
		c.Set(CtxUsername, claims.Username)
		ctx := activity.WithActor(c.Request.Context(), activity.Actor{AdminID: &adminID, IP: c.ClientIP()})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Actor attaches the client IP to every request so audit entries written
// outside an authenticated route still carry it.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := activity.WithActor(c.Request.Context(), activity.Actor{IP: c.ClientIP()})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
