package auth

import (
	"context"
	"time"

	"portfolio/internal/domain"
)

type AdminRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *domain.AdminUser) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type TokenIssuer interface {
	GenerateToken(adminID int64, username string) (string, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, action, details string)
}
