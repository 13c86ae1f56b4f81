package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

var profileColumns = []string{
	"name", "title", "punchline", "about", "email", "phone", "location",
	"github_url", "linkedin_url", "twitter_url",
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the profile row, or nil when none has been saved yet.
func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).Order("id ASC").First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Save inserts the profile when the table is empty and updates the existing
// row otherwise. image_path is only written when replaceImage is set.
func (r *ProfileRepository) Save(ctx context.Context, p *domain.Profile, replaceImage bool) (*domain.Profile, error) {
	var saved domain.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Profile
		err := tx.Order("id ASC").First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := *p
			row.ID = 0
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			saved = row
			return nil
		case err != nil:
			return err
		}

		cols := profileColumns
		if replaceImage {
			cols = append(append([]string{}, cols...), "image_path")
		}
		row := *p
		row.ID = existing.ID
		if err := tx.Model(&row).Select(cols).Updates(&row).Error; err != nil {
			return err
		}
		return tx.First(&saved, existing.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetResumePath stores path on the profile, creating the row from seed when
// the table is empty.
func (r *ProfileRepository) SetResumePath(ctx context.Context, path string, seed domain.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Profile
		err := tx.Order("id ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seed.ID = 0
			seed.ResumePath = &path
			return tx.Create(&seed).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Update("resume_path", path).Error
	})
}

// ClearResumePath drops the stored résumé path and reports the previous one.
func (r *ProfileRepository) ClearResumePath(ctx context.Context) (string, error) {
	var previous string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Profile
		err := tx.Where("resume_path IS NOT NULL").Order("id ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		previous = *existing.ResumePath
		return tx.Model(&existing).Update("resume_path", gorm.Expr("NULL")).Error
	})
	return previous, err
}
