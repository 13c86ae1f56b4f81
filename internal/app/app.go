package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/modules/activity"
	"portfolio/internal/modules/auth"
	"portfolio/internal/modules/content"
	"portfolio/internal/modules/inbox"
	"portfolio/internal/modules/upload"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"
	"portfolio/internal/repository"
)

// App holds the wired HTTP stack and the pieces main needs at startup and
// shutdown.
type App struct {
	Handler http.Handler
	Auth    *auth.Service
	Content *content.Service
	Hub     *inbox.Hub
}

// New wires repositories, services and handlers on top of an open,
// migrated database.
func New(cfg *config.Config, db *gorm.DB) (*App, error) {
	xdb, err := database.SQLX(db)
	if err != nil {
		return nil, fmt.Errorf("sqlx: %w", err)
	}

	activityStore := activity.NewStore(xdb)
	recorder := activity.NewRecorder(activityStore)
	hub := inbox.NewHub()
	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	files := upload.NewStore(cfg.UploadsDir, cfg.UploadMaxBytes, cfg.ImageMaxWidth)

	contentService := content.NewService(content.Stores{
		Profiles:     repository.NewProfileRepository(db),
		Skills:       repository.NewSkillRepository(db),
		Technologies: repository.NewTechnologyRepository(db),
		Projects:     repository.NewProjectRepository(db),
		Certificates: repository.NewCertificateRepository(db),
		Messages:     repository.NewMessageRepository(db),
		Stats:        repository.NewStatsRepository(db),
	}, recorder, hub)
	contentHandler := content.NewHandler(contentService, files)

	authService := auth.NewService(repository.NewAdminUserRepository(db), tokens, recorder)
	authHandler := auth.NewHandler(authService, tokens, auth.CookieOptions{
		Name:     cfg.CookieName,
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		SameSite: auth.ParseSameSite(cfg.CookieSameSite),
		MaxAge:   int(tokens.TTL().Seconds()),
	})

	activityHandler := activity.NewHandler(activityStore)
	inboxHandler := inbox.NewHandler(hub, cfg.CORSAllowedOrigins)
	limiter := middleware.NewLoginLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Actor())

	r.Static(upload.URLPrefix, files.BaseDir())

	api := r.Group("/api")
	api.GET("/health", health(db))

	authHandler.RegisterPublicRoutes(api, limiter.Middleware())
	contentHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(tokens, cfg.CookieName))
	{
		authHandler.RegisterProtectedRoutes(protected)
		contentHandler.RegisterProtectedRoutes(protected)
		activityHandler.RegisterRoutes(protected)
		inboxHandler.RegisterRoutes(protected)
	}

	return &App{
		Handler: middleware.CORS(r, cfg.CORSAllowedOrigins),
		Auth:    authService,
		Content: contentService,
		Hub:     hub,
	}, nil
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
