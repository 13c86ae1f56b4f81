package content

import (
	"context"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

type ProfileStore interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile, replaceImage bool) (*domain.Profile, error)
	SetResumePath(ctx context.Context, path string, seed domain.Profile) error
	ClearResumePath(ctx context.Context) (string, error)
}

type SkillStore interface {
	List(ctx context.Context) ([]domain.Skill, error)
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	Create(ctx context.Context, s *domain.Skill) error
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id int64) error
}

type TechnologyStore interface {
	List(ctx context.Context) ([]domain.Technology, error)
	Create(ctx context.Context, t *domain.Technology) error
	Delete(ctx context.Context, id int64) error
}

type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project, replaceImage bool) error
	Delete(ctx context.Context, id int64) error
}

type CertificateStore interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	GetByID(ctx context.Context, id int64) (*domain.Certificate, error)
	Create(ctx context.Context, c *domain.Certificate) error
	Update(ctx context.Context, c *domain.Certificate, replacePDF bool) error
	Delete(ctx context.Context, id int64) error
}

type MessageStore interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, m *domain.Message) error
	Delete(ctx context.Context, id int64) error
}

type StatsReader interface {
	Counts(ctx context.Context) (repository.Counts, error)
}

// ActivityRecorder appends audit entries. Implementations must not block the
// caller on failure; Record has no error to return.
type ActivityRecorder interface {
	Record(ctx context.Context, action, details string)
}

// MessageNotifier is told about every stored contact message.
type MessageNotifier interface {
	MessageCreated(m domain.Message)
}

// Stores groups the persistence dependencies of the service.
type Stores struct {
	Profiles     ProfileStore
	Skills       SkillStore
	Technologies TechnologyStore
	Projects     ProjectStore
	Certificates CertificateStore
	Messages     MessageStore
	Stats        StatsReader
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string) {}

type nopNotifier struct{}

func (nopNotifier) MessageCreated(domain.Message) {}
