package content

import (
	"context"

	"portfolio/internal/domain"
)

// DefaultProfile is what the public page shows before the owner saves one.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Name:      "Your Name",
		Title:     "Backend Engineer",
		Punchline: "Building amazing things",
		About:     "About me...",
		Email:     "email@example.com",
		Phone:     "+1234567890",
		Location:  "City, Country",
	}
}

// GetProfile never reports a missing profile; it falls back to
// DefaultProfile instead.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, storageErr("get profile", err)
	}
	if p == nil {
		def := DefaultProfile()
		return &def, nil
	}
	return p, nil
}

// UpsertProfile creates the profile on first save and updates it in place
// afterwards. The stored image is replaced only when newImagePath is set.
func (s *Service) UpsertProfile(ctx context.Context, req ProfileRequest, newImagePath *string) (*domain.Profile, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		Name:        req.Name,
		Title:       req.Title,
		Punchline:   req.Punchline,
		About:       req.About,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		ImagePath:   newImagePath,
		GithubURL:   optional(req.GithubURL),
		LinkedinURL: optional(req.LinkedinURL),
		TwitterURL:  optional(req.TwitterURL),
	}

	saved, err := s.profiles.Save(ctx, p, newImagePath != nil)
	if err != nil {
		return nil, storageErr("save profile", err)
	}

	s.record(ctx, ActionProfileUpdate, "Profile updated")
	return saved, nil
}
