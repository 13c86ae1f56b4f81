package repository

import (
	"context"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type Counts struct {
	Projects     int64
	Certificates int64
	Messages     int64
	Skills       int64
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts reads all four totals straight from the tables; nothing is cached.
func (r *StatsRepository) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	db := r.db.WithContext(ctx)

	targets := []struct {
		model any
		dst   *int64
	}{
		{&domain.Project{}, &c.Projects},
		{&domain.Certificate{}, &c.Certificates},
		{&domain.Message{}, &c.Messages},
		{&domain.Skill{}, &c.Skills},
	}
	for _, t := range targets {
		if err := db.Model(t.model).Count(t.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}
