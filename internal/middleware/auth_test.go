package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/modules/activity"
	"portfolio/internal/pkg/jwt"
)

func protectedRouter(t *testing.T, tokens *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(tokens, "admin_token"))
	router.GET("/protected", func(c *gin.Context) {
		actor := activity.ActorFromContext(c.Request.Context())
		require.NotNil(t, actor.AdminID)
		c.JSON(http.StatusOK, gin.H{
			"admin_id": c.GetInt64(CtxAdminID),
			"username": c.GetString(CtxUsername),
			"actor_id": *actor.AdminID,
			"actor_ip": actor.IP,
		})
	})
	return router
}

func TestJWTAuth_BearerToken(t *testing.T) {
	tokens := jwt.New("test-secret-123", time.Hour)
	token, err := tokens.GenerateToken(42, "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(t, tokens).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":42`)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
	assert.Contains(t, w.Body.String(), `"actor_id":42`)
}

func TestJWTAuth_Cookie(t *testing.T) {
	tokens := jwt.New("test-secret-123", time.Hour)
	token, err := tokens.GenerateToken(7, "owner")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	protectedRouter(t, tokens).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":7`)
}

func TestJWTAuth_Rejects(t *testing.T) {
	tokens := jwt.New("test-secret-123", time.Hour)
	foreign, err := jwt.New("wrong-secret", time.Hour).GenerateToken(1, "admin")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "AUTH_REQUIRED"},
		{"bad format", "Token abc", "INVALID_AUTH_FORMAT"},
		{"empty bearer", "Bearer ", "INVALID_AUTH_FORMAT"},
		{"garbage", "Bearer invalid-jwt-here", "INVALID_TOKEN"},
		{"wrong secret", "Bearer " + foreign, "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			protectedRouter(t, tokens).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestLoginLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewLoginLimiter(2, time.Minute)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRequestIDAndErrorLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorLogger())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := CORS(next, []string{"https://me.dev"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	req.Header.Set("Origin", "https://me.dev")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	h.ServeHTTP(w, req)
	assert.Equal(t, "https://me.dev", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Origin", "https://evil.example")
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
