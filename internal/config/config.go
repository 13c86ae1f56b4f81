package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultMaxOpenConns      = "10"
	defaultMaxIdleConns      = "5"
	defaultConnMaxLifetime   = "30m"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTAccessTTL      = "1h"
	defaultCookieName        = "admin_token"
	defaultCookieSecure      = "false"
	defaultCookieSameSite    = "Lax"
	defaultCookiePath        = "/"
	defaultUploadsDir        = "./uploads"
	defaultUploadMaxBytes    = "5242880"
	defaultImageMaxWidth     = "1600"
	defaultLoginMaxAttempts  = "5"
	defaultLoginWindow       = "15m"
	defaultActivityRetention = "2160h"
)

type Config struct {
	AppEnv string
	Port   string

	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	JWTSecret      string
	JWTAccessTTL   time.Duration
	CookieName     string
	CookieSecure   bool
	CookieSameSite string
	CookiePath     string

	UploadsDir     string
	UploadMaxBytes int64
	ImageMaxWidth  int

	CORSAllowedOrigins []string

	LoginMaxAttempts int
	LoginWindow      time.Duration

	AdminUsername string
	AdminPassword string

	ActivityRetention time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.CookieName = strings.TrimSpace(getEnv("COOKIE_NAME", defaultCookieName))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath))
	cfg.UploadsDir = strings.TrimSpace(getEnv("UPLOADS_DIR", defaultUploadsDir))
	cfg.CORSAllowedOrigins = parseListEnv("CORS_ALLOWED_ORIGINS")
	cfg.AdminUsername = strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	var err error
	if cfg.MaxOpenConns, err = parseIntEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = parseIntEnv("DB_MAX_IDLE_CONNS", defaultMaxIdleConns); err != nil {
		return nil, err
	}
	if cfg.ConnMaxLifetime, err = parseDurationEnv("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime); err != nil {
		return nil, err
	}
	if cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL); err != nil {
		return nil, err
	}
	maxBytes, err := parseIntEnv("UPLOAD_MAX_BYTES", defaultUploadMaxBytes)
	if err != nil {
		return nil, err
	}
	cfg.UploadMaxBytes = int64(maxBytes)
	if cfg.ImageMaxWidth, err = parseIntEnv("IMAGE_MAX_WIDTH", defaultImageMaxWidth); err != nil {
		return nil, err
	}
	if cfg.LoginMaxAttempts, err = parseIntEnv("LOGIN_MAX_ATTEMPTS", defaultLoginMaxAttempts); err != nil {
		return nil, err
	}
	if cfg.LoginWindow, err = parseDurationEnv("LOGIN_WINDOW", defaultLoginWindow); err != nil {
		return nil, err
	}
	if cfg.ActivityRetention, err = parseDurationEnv("ACTIVITY_RETENTION", defaultActivityRetention); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%s uploads=%s cookie_secure=%t same_site=%s", cfg.AppEnv, cfg.Port, cfg.UploadsDir, cfg.CookieSecure, cfg.CookieSameSite)

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.MaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0")
	}
	if cfg.MaxIdleConns < 0 || cfg.MaxIdleConns > cfg.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}
	if cfg.ImageMaxWidth < 0 {
		return fmt.Errorf("IMAGE_MAX_WIDTH must be >= 0")
	}
	if cfg.LoginMaxAttempts <= 0 {
		return fmt.Errorf("LOGIN_MAX_ATTEMPTS must be > 0")
	}
	if cfg.LoginWindow <= 0 {
		return fmt.Errorf("LOGIN_WINDOW must be > 0")
	}
	if cfg.ActivityRetention <= 0 {
		return fmt.Errorf("ACTIVITY_RETENTION must be > 0")
	}
	if cfg.UploadsDir == "" {
		return fmt.Errorf("UPLOADS_DIR must not be empty")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

// parseListEnv splits a comma separated variable, e.g.
// CORS_ALLOWED_ORIGINS=https://me.dev,https://admin.me.dev
func parseListEnv(name string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
