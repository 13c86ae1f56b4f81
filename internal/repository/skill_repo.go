package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List orders by display_order then id so ties stay deterministic.
func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("id ASC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var s domain.Skill
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &domain.Skill{}, s.ID); err != nil {
			return err
		}
		return tx.Model(s).
			Select("name", "category", "level", "icon", "technology_id", "display_order").
			Updates(s).Error
	})
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &domain.Skill{}, id)
}

// mustExist maps a missing row to domain.ErrNotFound. RowsAffected is not
// used because MySQL reports 0 for updates that change nothing.
func mustExist(tx *gorm.DB, model any, id int64) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model any, id int64) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
