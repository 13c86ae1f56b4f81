package content

import (
	"context"
	"strings"

	"portfolio/internal/pkg/validator"
)

// Audit action names.
const (
	ActionProfileUpdate     = "PROFILE_UPDATE"
	ActionSkillAdd          = "SKILL_ADD"
	ActionSkillUpdate       = "SKILL_UPDATE"
	ActionSkillDelete       = "SKILL_DELETE"
	ActionTechCreate        = "TECH_CREATE"
	ActionTechDelete        = "TECH_DELETE"
	ActionProjectAdd        = "PROJECT_ADD"
	ActionProjectUpdate     = "PROJECT_UPDATE"
	ActionProjectDelete     = "PROJECT_DELETE"
	ActionCertificateAdd    = "CERTIFICATE_ADD"
	ActionCertificateUpdate = "CERTIFICATE_UPDATE"
	ActionCertificateDelete = "CERTIFICATE_DELETE"
	ActionMessageDelete     = "MESSAGE_DELETE"
	ActionResumeUpload      = "RESUME_UPLOAD"
	ActionResumeDelete      = "RESUME_DELETE"
)

// Service assembles the portfolio views from storage and applies every
// write the admin panel and the contact form can make.
type Service struct {
	profiles     ProfileStore
	skills       SkillStore
	technologies TechnologyStore
	projects     ProjectStore
	certificates CertificateStore
	messages     MessageStore
	stats        StatsReader

	audit    ActivityRecorder
	notifier MessageNotifier
}

func NewService(stores Stores, audit ActivityRecorder, notifier MessageNotifier) *Service {
	if audit == nil {
		audit = nopRecorder{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		profiles:     stores.Profiles,
		skills:       stores.Skills,
		technologies: stores.Technologies,
		projects:     stores.Projects,
		certificates: stores.Certificates,
		messages:     stores.Messages,
		stats:        stores.Stats,
		audit:        audit,
		notifier:     notifier,
	}
}

func validate(v any) error {
	if fields := validator.Validate(v); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkID(id int64) error {
	if id <= 0 {
		return invalid("id", "gt")
	}
	return nil
}

// optional maps blank strings to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *Service) record(ctx context.Context, action, details string) {
	s.audit.Record(ctx, action, details)
}
