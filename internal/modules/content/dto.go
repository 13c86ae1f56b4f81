package content

import (
	"encoding/json"
	"strings"

	"portfolio/internal/domain"
)

type ProfileRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Title       string `json:"title" form:"title" validate:"max=150"`
	Punchline   string `json:"punchline" form:"punchline" validate:"max=255"`
	About       string `json:"about" form:"about"`
	Email       string `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Phone       string `json:"phone" form:"phone" validate:"max=50"`
	Location    string `json:"location" form:"location" validate:"max=150"`
	GithubURL   string `json:"github_url" form:"github_url" validate:"omitempty,url,max=255"`
	LinkedinURL string `json:"linkedin_url" form:"linkedin_url" validate:"omitempty,url,max=255"`
	TwitterURL  string `json:"twitter_url" form:"twitter_url" validate:"omitempty,url,max=255"`
}

type SkillRequest struct {
	Name         string `json:"name" form:"name" validate:"required,max=100"`
	Category     string `json:"category" form:"category" validate:"required,max=100"`
	Level        string `json:"level" form:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Icon         string `json:"icon" form:"icon" validate:"max=255"`
	TechnologyID *int64 `json:"technology_id" form:"technology_id" validate:"omitempty,gt=0"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// TechnologyRequest does not restrict category to the known set; the admin
// UI offers the fixed list and anything else is stored as typed.
type TechnologyRequest struct {
	Name      string `json:"name" form:"name" validate:"required,max=100"`
	Category  string `json:"category" form:"category" validate:"required,max=50"`
	IconClass string `json:"icon_class" form:"icon_class" validate:"max=100"`
	IconURL   string `json:"icon_url" form:"icon_url" validate:"omitempty,max=255"`
}

type ProjectRequest struct {
	Title        string `json:"title" form:"title" validate:"required,max=200"`
	Description  string `json:"description" form:"description"`
	Status       string `json:"status" form:"status" validate:"omitempty,oneof=completed development updating"`
	GithubURL    string `json:"github_url" form:"github_url" validate:"omitempty,url,max=255"`
	DemoURL      string `json:"demo_url" form:"demo_url" validate:"omitempty,url,max=255"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// CertificateRequest has no duration field: it is always derived from the
// two dates.
type CertificateRequest struct {
	Title           string `json:"title" form:"title" validate:"required,max=200"`
	Issuer          string `json:"issuer" form:"issuer" validate:"required,max=200"`
	FromDate        string `json:"from_date" form:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate          string `json:"to_date" form:"to_date" validate:"required,datetime=2006-01-02"`
	VerificationURL string `json:"verification_url" form:"verification_url" validate:"omitempty,url,max=255"`
	DisplayOrder    int    `json:"display_order" form:"display_order"`
}

type MessageRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" form:"subject" validate:"max=255"`
	Message string `json:"message" form:"message" validate:"required"`
}

// TechnologyList accepts either a JSON array or a single comma separated
// string, the two shapes the admin UI has sent over time.
type TechnologyList []string

func (l *TechnologyList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*l = NormalizeTechnologies(list...)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*l = NormalizeTechnologies(s)
	return nil
}

// NormalizeTechnologies splits every value on commas, trims the pieces and
// drops the empty ones. Order is kept and duplicates are not collapsed.
func NormalizeTechnologies(values ...string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// SkillGroup is one category bucket of GroupSkillsByCategory.
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []domain.Skill `json:"skills"`
}

type DashboardStats struct {
	TotalProjects     int64 `json:"total_projects"`
	TotalCertificates int64 `json:"total_certificates"`
	TotalMessages     int64 `json:"total_messages"`
	TotalSkills       int64 `json:"total_skills"`
}

// Portfolio is everything the public page renders, in one payload.
type Portfolio struct {
	Profile      *domain.Profile      `json:"profile"`
	Skills       []SkillGroup         `json:"skills"`
	Projects     []domain.Project     `json:"projects"`
	Certificates []domain.Certificate `json:"certificates"`
}
