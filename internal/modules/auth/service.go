package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain"
	"portfolio/internal/modules/activity"
)

const (
	ActionLoginSuccess = "LOGIN_SUCCESS"
	ActionLoginFailed  = "LOGIN_FAILED"
	ActionLogout       = "LOGOUT"

	minPasswordLength = 8
)

// Service authenticates the site administrator.
type Service struct {
	admins AdminRepository
	tokens TokenIssuer
	audit  ActivityRecorder
	now    func() time.Time
}

func NewService(admins AdminRepository, tokens TokenIssuer, audit ActivityRecorder) *Service {
	if audit == nil {
		audit = nopRecorder{}
	}
	return &Service{admins: admins, tokens: tokens, audit: audit, now: time.Now}
}

// Login checks the password against an active account and issues a token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)

	admin, err := s.admins.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.audit.Record(ctx, ActionLoginFailed, "Failed login attempt for: "+username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.audit.Record(withAdmin(ctx, admin.ID), ActionLoginFailed, "Invalid password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID, s.now().UTC()); err != nil {
		log.Printf("auth: update last_login admin_id=%d failed: %v", admin.ID, err)
	}
	s.audit.Record(withAdmin(ctx, admin.ID), ActionLoginSuccess, "Successful login")

	return &LoginResult{AdminID: admin.ID, Username: admin.Username, Token: token}, nil
}

func (s *Service) Logout(ctx context.Context) {
	s.audit.Record(ctx, ActionLogout, "User logged out")
}

// EnsureAdmin creates the account when it does not exist yet. It reports
// whether a new account was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	if len(password) < minPasswordLength {
		return false, ErrWeakPassword
	}

	exists, err := s.admins.Exists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	err = s.admins.Create(ctx, &domain.AdminUser{Username: username, PasswordHash: string(hash), IsActive: true})
	if errors.Is(err, domain.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

// withAdmin keeps the caller's IP but attributes the entry to adminID.
func withAdmin(ctx context.Context, adminID int64) context.Context {
	actor := activity.ActorFromContext(ctx)
	actor.AdminID = &adminID
	return activity.WithActor(ctx, actor)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string) {}
