package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the session cookie written on login.
type CookieOptions struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// ParseSameSite maps the config spelling to http.SameSite. Unknown values
// fall back to Lax.
func ParseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type Handler struct {
	service *Service
	tokens  tokenValidator
	cookie  CookieOptions
}

func NewHandler(service *Service, tokens tokenValidator, cookie CookieOptions) *Handler {
	return &Handler{service: service, tokens: tokens, cookie: cookie}
}

// RegisterPublicRoutes mounts login behind the given limiter chain.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup, loginLimit gin.HandlerFunc) {
	if loginLimit != nil {
		public.POST("/login", loginLimit, h.Login)
	} else {
		public.POST("/login", h.Login)
	}
	public.GET("/check-auth", h.CheckAuth)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/logout", h.Logout)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password required")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		log.Printf("auth: login failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	h.setCookie(c, res.Token, h.cookie.MaxAge)
	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":       res.AdminID,
			"username": res.Username,
		},
		"token": res.Token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CheckAuth never fails; it reports whether the caller holds a valid token.
func (h *Handler) CheckAuth(c *gin.Context) {
	raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if raw == "" {
		raw, _ = c.Cookie(h.cookie.Name)
	}
	if raw != "" {
		if claims, err := h.tokens.ValidateToken(raw); err == nil {
			response.Success(c, http.StatusOK, gin.H{"authenticated": true, "username": claims.Username})
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"authenticated": false})
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, "", h.cookie.Secure, true)
}
