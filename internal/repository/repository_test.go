package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/internal/database"
	"portfolio/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectWithPool(filepath.Join(t.TempDir(), "repo.db"), database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1, Silent: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func TestProfileRepository_SaveInsertThenUpdate(t *testing.T) {
	db := setupDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := repo.Save(ctx, &domain.Profile{Name: "Ann", Title: "Dev", ImagePath: strPtr("/uploads/images/a.png")}, true)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.Save(ctx, &domain.Profile{Name: "Ann B", Title: "Lead"}, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ann B", second.Name)
	assert.Equal(t, "Lead", second.Title)
	require.NotNil(t, second.ImagePath)
	assert.Equal(t, "/uploads/images/a.png", *second.ImagePath)

	var n int64
	require.NoError(t, db.Model(&domain.Profile{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestProfileRepository_ResumePath(t *testing.T) {
	db := setupDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	_, err := repo.ClearResumePath(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.SetResumePath(ctx, "/uploads/resumes/cv.pdf", domain.Profile{Name: "Your Name", Title: "Your Title"}))
	p, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Your Name", p.Name)
	require.NotNil(t, p.ResumePath)

	prev, err := repo.ClearResumePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/cv.pdf", prev)

	p, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, p.ResumePath)
}

func TestSkillRepository_ListOrderAndNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	for _, s := range []domain.Skill{
		{Name: "Go", Category: "Backend", Level: domain.LevelExpert, DisplayOrder: 2},
		{Name: "SQL", Category: "Backend", Level: domain.LevelAdvanced, DisplayOrder: 1},
		{Name: "CSS", Category: "Frontend", Level: domain.LevelIntermediate, DisplayOrder: 1},
	} {
		s := s
		require.NoError(t, repo.Create(ctx, &s))
	}

	skills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, []string{"SQL", "CSS", "Go"}, []string{skills[0].Name, skills[1].Name, skills[2].Name})

	err = repo.Update(ctx, &domain.Skill{ID: 999, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrNotFound)

	skills[0].Level = domain.LevelExpert
	require.NoError(t, repo.Update(ctx, &skills[0]))
	got, err := repo.GetByID(ctx, skills[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelExpert, got.Level)
}

func TestTechnologyRepository_DuplicateAndDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewTechnologyRepository(db)
	skills := NewSkillRepository(db)
	ctx := context.Background()

	tech := &domain.Technology{Name: "PostgreSQL", Category: domain.TechCategoryDatabase}
	require.NoError(t, repo.Create(ctx, tech))
	err := repo.Create(ctx, &domain.Technology{Name: "PostgreSQL", Category: domain.TechCategoryDatabase})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	require.NoError(t, repo.Create(ctx, &domain.Technology{Name: "PostgreSQL", Category: domain.TechCategoryBackend}))

	skill := &domain.Skill{Name: "Postgres", Category: "DB", Level: domain.LevelAdvanced, TechnologyID: &tech.ID}
	require.NoError(t, skills.Create(ctx, skill))

	require.NoError(t, repo.Delete(ctx, tech.ID))
	got, err := skills.GetByID(ctx, skill.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TechnologyID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.TechCategoryBackend, list[0].Category)
}

func TestProjectRepository_TechnologyLifecycle(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{Title: "Shop", Status: domain.ProjectCompleted, Tech: []string{"Java", "MySQL"}}
	require.NoError(t, repo.Create(ctx, p))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Java", "MySQL"}, list[0].Tech)

	p.Tech = []string{"Go", "Java"}
	p.Title = "Shop v2"
	require.NoError(t, repo.Update(ctx, p, false))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop v2", got.Title)
	assert.Equal(t, []string{"Go", "Java"}, got.Tech)

	p.Tech = nil
	require.NoError(t, repo.Update(ctx, p, false))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tech)

	p.Tech = []string{"Rust"}
	require.NoError(t, repo.Update(ctx, p, false))
	require.NoError(t, repo.Delete(ctx, p.ID))

	var orphans int64
	require.NoError(t, db.Model(&domain.ProjectTechnology{}).Where("project_id = ?", p.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p, false), domain.ErrNotFound)
}

func TestProjectRepository_UpdatePreservesImage(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{Title: "Blog", Status: domain.ProjectDevelopment, ImagePath: strPtr("/uploads/images/old.png")}
	require.NoError(t, repo.Create(ctx, p))

	p.ImagePath = nil
	require.NoError(t, repo.Update(ctx, p, false))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ImagePath)
	assert.Equal(t, "/uploads/images/old.png", *got.ImagePath)

	p.ImagePath = strPtr("/uploads/images/new.png")
	require.NoError(t, repo.Update(ctx, p, true))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/new.png", *got.ImagePath)
}

func TestProjectRepository_ListOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "new", "pinned"} {
		p := &domain.Project{Title: title, Status: domain.ProjectCompleted, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if title == "pinned" {
			p.DisplayOrder = -1
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "pinned", list[0].Title)
	assert.Equal(t, "new", list[1].Title)
	assert.Equal(t, "old", list[2].Title)
}

func TestCertificateRepository_UpdatePDF(t *testing.T) {
	db := setupDB(t)
	repo := NewCertificateRepository(db)
	ctx := context.Background()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Certificate{
		Title:    "CKA",
		Issuer:   "CNCF",
		FromDate: datatypes.Date(from),
		ToDate:   datatypes.Date(from.AddDate(0, 0, 9)),
		Duration: "9 days",
		PDFPath:  strPtr("/uploads/pdfs/cka.pdf"),
	}
	require.NoError(t, repo.Create(ctx, c))

	c.PDFPath = nil
	c.Title = "CKAD"
	require.NoError(t, repo.Update(ctx, c, false))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "CKAD", got.Title)
	require.NotNil(t, got.PDFPath)
	assert.Equal(t, "/uploads/pdfs/cka.pdf", *got.PDFPath)
	assert.Equal(t, "2024-01-10", time.Time(got.ToDate).Format("2006-01-02"))

	assert.ErrorIs(t, repo.Delete(ctx, 12345), domain.ErrNotFound)
}

func TestMessageAndStats(t *testing.T) {
	db := setupDB(t)
	msgs := NewMessageRepository(db)
	stats := NewStatsRepository(db)
	ctx := context.Background()

	c, err := stats.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{}, c)

	first := &domain.Message{Name: "A", Email: "a@x.io", Subject: "hi", Body: "one", CreatedAt: time.Now().Add(-time.Hour)}
	second := &domain.Message{Name: "B", Email: "b@x.io", Subject: "yo", Body: "two"}
	require.NoError(t, msgs.Create(ctx, first))
	require.NoError(t, msgs.Create(ctx, second))
	require.NoError(t, NewSkillRepository(db).Create(ctx, &domain.Skill{Name: "Go", Category: "Backend", Level: domain.LevelExpert}))

	list, err := msgs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Body)

	c, err = stats.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Messages: 2, Skills: 1}, c)

	require.NoError(t, msgs.Delete(ctx, first.ID))
	c, err = stats.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Messages)
}

func TestAdminUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewAdminUserRepository(db)
	ctx := context.Background()

	u := &domain.AdminUser{Username: "admin", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, &domain.AdminUser{Username: "admin", PasswordHash: "x", IsActive: true}), domain.ErrDuplicate)

	ok, err := repo.Exists(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.TouchLastLogin(ctx, u.ID, now))
	got, err := repo.GetActiveByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)

	require.NoError(t, db.Model(u).Update("is_active", false).Error)
	_, err = repo.GetActiveByUsername(ctx, "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
