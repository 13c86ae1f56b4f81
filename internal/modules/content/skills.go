package content

import (
	"context"
	"fmt"

	"portfolio/internal/domain"
)

func (s *Service) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, storageErr("list skills", err)
	}
	return skills, nil
}

func (s *Service) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get skill", err)
	}
	return skill, nil
}

// ListSkillGroups is ListSkills bucketed by category.
func (s *Service) ListSkillGroups(ctx context.Context) ([]SkillGroup, error) {
	skills, err := s.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	return GroupSkillsByCategory(skills), nil
}

// GroupSkillsByCategory keeps categories in first-seen order and skills in
// input order within each category.
func GroupSkillsByCategory(skills []domain.Skill) []SkillGroup {
	groups := []SkillGroup{}
	index := make(map[string]int)
	for _, sk := range skills {
		i, ok := index[sk.Category]
		if !ok {
			i = len(groups)
			index[sk.Category] = i
			groups = append(groups, SkillGroup{Category: sk.Category})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}

func (s *Service) AddSkill(ctx context.Context, req SkillRequest) (int64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}
	skill := skillFromRequest(req)
	if err := s.skills.Create(ctx, skill); err != nil {
		return 0, storageErr("add skill", err)
	}
	s.record(ctx, ActionSkillAdd, "Added skill: "+skill.Name)
	return skill.ID, nil
}

func (s *Service) UpdateSkill(ctx context.Context, id int64, req SkillRequest) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := validate(req); err != nil {
		return err
	}
	skill := skillFromRequest(req)
	skill.ID = id
	if err := s.skills.Update(ctx, skill); err != nil {
		return storageErr("update skill", err)
	}
	s.record(ctx, ActionSkillUpdate, fmt.Sprintf("Updated skill ID: %d", id))
	return nil
}

func (s *Service) DeleteSkill(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.skills.Delete(ctx, id); err != nil {
		return storageErr("delete skill", err)
	}
	s.record(ctx, ActionSkillDelete, fmt.Sprintf("Deleted skill ID: %d", id))
	return nil
}

// skillFromRequest fills the defaults for omitted level and icon.
func skillFromRequest(req SkillRequest) *domain.Skill {
	level := domain.SkillLevel(req.Level)
	if level == "" {
		level = domain.LevelIntermediate
	}
	return &domain.Skill{
		Name:         req.Name,
		Category:     req.Category,
		Level:        level,
		Icon:         req.Icon,
		TechnologyID: req.TechnologyID,
		DisplayOrder: req.DisplayOrder,
	}
}
