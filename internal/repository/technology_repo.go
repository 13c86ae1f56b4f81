package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type TechnologyRepository struct {
	db *gorm.DB
}

func NewTechnologyRepository(db *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

func (r *TechnologyRepository) List(ctx context.Context) ([]domain.Technology, error) {
	var techs []domain.Technology
	err := r.db.WithContext(ctx).
		Order("category ASC").
		Order("name ASC").
		Find(&techs).Error
	return techs, err
}

// Create fails with domain.ErrDuplicate when the name is already taken in
// the same category.
func (r *TechnologyRepository) Create(ctx context.Context, t *domain.Technology) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if database.IsUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// Delete also detaches skills that pointed at the technology.
func (r *TechnologyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Skill{}).
			Where("technology_id = ?", id).
			Update("technology_id", gorm.Expr("NULL")).Error; err != nil {
			return err
		}
		return deleteByID(tx, &domain.Technology{}, id)
	})
}
