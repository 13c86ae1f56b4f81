package content

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/domain"
)

// DashboardStats reads fresh counts on every call.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	c, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, storageErr("dashboard stats", err)
	}
	return &DashboardStats{
		TotalProjects:     c.Projects,
		TotalCertificates: c.Certificates,
		TotalMessages:     c.Messages,
		TotalSkills:       c.Skills,
	}, nil
}

// Portfolio assembles the public page payload.
func (s *Service) Portfolio(ctx context.Context) (*Portfolio, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.ListSkillGroups(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	certs, err := s.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}
	return &Portfolio{
		Profile:      profile,
		Skills:       groups,
		Projects:     projects,
		Certificates: certs,
	}, nil
}

// UploadResume points the profile at a new résumé. An empty store gets a
// placeholder profile so the path has somewhere to live.
func (s *Service) UploadResume(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return invalid("resume", "required")
	}
	seed := domain.Profile{Name: "Your Name", Title: "Your Title"}
	if err := s.profiles.SetResumePath(ctx, path, seed); err != nil {
		return storageErr("upload resume", err)
	}
	s.record(ctx, ActionResumeUpload, "Resume uploaded")
	return nil
}

// DeleteResume clears the résumé path and returns the one that was stored.
func (s *Service) DeleteResume(ctx context.Context) (string, error) {
	previous, err := s.profiles.ClearResumePath(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", storageErr("delete resume", err)
	}
	s.record(ctx, ActionResumeDelete, "Resume deleted")
	return previous, nil
}
