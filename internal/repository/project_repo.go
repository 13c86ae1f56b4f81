package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

var projectColumns = []string{"title", "description", "status", "github_url", "demo_url", "display_order"}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns projects by display_order, newest first within the same
// order, each carrying its technology names.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]int64, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	techs, err := r.TechnologiesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Tech = techs[projects[i].ID]
		if projects[i].Tech == nil {
			projects[i].Tech = []string{}
		}
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	techs, err := r.TechnologiesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Tech = techs[id]
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return &p, nil
}

// TechnologiesFor groups join rows by project in insertion order.
func (r *ProjectRepository) TechnologiesFor(ctx context.Context, projectIDs []int64) (map[int64][]string, error) {
	var rows []domain.ProjectTechnology
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("project_id ASC").
		Order("sort_index ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]string, len(projectIDs))
	for _, row := range rows {
		out[row.ProjectID] = append(out[row.ProjectID], row.Technology)
	}
	return out, nil
}

// Create inserts the project and its technology rows in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return insertProjectTechnologies(tx, p.ID, p.Tech)
	})
}

// Update writes the scalar columns and replaces the whole technology set.
// image_path is only written when replaceImage is set.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project, replaceImage bool) error {
	cols := projectColumns
	if replaceImage {
		cols = append(append([]string{}, cols...), "image_path")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &domain.Project{}, p.ID); err != nil {
			return err
		}
		if err := tx.Model(p).Select(cols).Updates(p).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&domain.ProjectTechnology{}).Error; err != nil {
			return err
		}
		return insertProjectTechnologies(tx, p.ID, p.Tech)
	})
}

// Delete removes the project and every technology row pointing at it.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&domain.ProjectTechnology{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &domain.Project{}, id)
	})
}

func insertProjectTechnologies(tx *gorm.DB, projectID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]domain.ProjectTechnology, len(names))
	for i, name := range names {
		rows[i] = domain.ProjectTechnology{ProjectID: projectID, Technology: name, SortIndex: i}
	}
	return tx.Create(&rows).Error
}
