package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

var certificateColumns = []string{"title", "issuer", "from_date", "to_date", "duration", "verification_url", "display_order"}

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) GetByID(ctx context.Context, id int64) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Update writes the scalar columns; pdf_path only when replacePDF is set.
func (r *CertificateRepository) Update(ctx context.Context, c *domain.Certificate, replacePDF bool) error {
	cols := certificateColumns
	if replacePDF {
		cols = append(append([]string{}, cols...), "pdf_path")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &domain.Certificate{}, c.ID); err != nil {
			return err
		}
		return tx.Model(c).Select(cols).Updates(c).Error
	})
}

func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Certificate{}, id)
}
