package repository

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetActiveByUsername returns domain.ErrNotFound for unknown or disabled
// accounts alike.
func (r *AdminUserRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.AdminUser{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func (r *AdminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if database.IsUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *AdminUserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.AdminUser{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
