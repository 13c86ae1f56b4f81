package content

import (
	"context"
	"fmt"

	"portfolio/internal/domain"
)

func (s *Service) ListTechnologies(ctx context.Context) ([]domain.Technology, error) {
	techs, err := s.technologies.List(ctx)
	if err != nil {
		return nil, storageErr("list technologies", err)
	}
	return techs, nil
}

// AddTechnology marks the entry as custom whenever an icon URL is given.
func (s *Service) AddTechnology(ctx context.Context, req TechnologyRequest) (int64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}
	t := &domain.Technology{
		Name:      req.Name,
		Category:  req.Category,
		IconClass: optional(req.IconClass),
		IconURL:   optional(req.IconURL),
	}
	t.IsCustom = t.IconURL != nil

	if err := s.technologies.Create(ctx, t); err != nil {
		return 0, storageErr("add technology", err)
	}
	s.record(ctx, ActionTechCreate, "Created technology: "+t.Name)
	return t.ID, nil
}

func (s *Service) DeleteTechnology(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.technologies.Delete(ctx, id); err != nil {
		return storageErr("delete technology", err)
	}
	s.record(ctx, ActionTechDelete, fmt.Sprintf("Deleted technology ID: %d", id))
	return nil
}
