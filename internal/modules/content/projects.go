package content

import (
	"context"
	"fmt"

	"portfolio/internal/domain"
)

// ListProjects returns projects with their technology names attached in the
// order they were saved.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get project", err)
	}
	return p, nil
}

// AddProject stores the project and one technology link per name, in the
// given order. Names are free text and need not exist in technologies.
func (s *Service) AddProject(ctx context.Context, req ProjectRequest, technologies []string, newImagePath *string) (int64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}
	p := projectFromRequest(req, technologies)
	p.ImagePath = newImagePath

	if err := s.projects.Create(ctx, p); err != nil {
		return 0, storageErr("add project", err)
	}
	s.record(ctx, ActionProjectAdd, "Added project: "+p.Title)
	return p.ID, nil
}

// UpdateProject replaces the technology set wholesale; an empty list clears
// it. The image is kept unless newImagePath is set.
func (s *Service) UpdateProject(ctx context.Context, id int64, req ProjectRequest, technologies []string, newImagePath *string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := validate(req); err != nil {
		return err
	}
	p := projectFromRequest(req, technologies)
	p.ID = id
	p.ImagePath = newImagePath

	if err := s.projects.Update(ctx, p, newImagePath != nil); err != nil {
		return storageErr("update project", err)
	}
	s.record(ctx, ActionProjectUpdate, fmt.Sprintf("Updated project ID: %d", id))
	return nil
}

// DeleteProject drops the project together with its technology links.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return storageErr("delete project", err)
	}
	s.record(ctx, ActionProjectDelete, fmt.Sprintf("Deleted project ID: %d", id))
	return nil
}

func projectFromRequest(req ProjectRequest, technologies []string) *domain.Project {
	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectDevelopment
	}
	tech := NormalizeTechnologies(technologies...)
	return &domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		DisplayOrder: req.DisplayOrder,
		Tech:         tech,
	}
}
