package main

import (
	"context"
	"log"

	"gorm.io/gorm/clause"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/modules/auth"
	"portfolio/internal/modules/content"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Join rows go before projects.
	log.Println("Cleaning old content...")
	for _, table := range []string{"project_technologies", "projects", "skills", "certificates", "messages", "profile"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s failed: %v", table, err)
		}
	}

	ctx := context.Background()

	// ================== ADMIN ==================
	username, password := cfg.AdminUsername, cfg.AdminPassword
	if username == "" {
		username, password = "admin", "admin12345"
	}
	authService := auth.NewService(repository.NewAdminUserRepository(db), jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL), nil)
	created, err := authService.EnsureAdmin(ctx, username, password)
	if err != nil {
		log.Fatal("admin bootstrap failed:", err)
	}
	if created {
		log.Printf("Admin created: %s", username)
	}

	// ================== TECHNOLOGIES ==================
	log.Println("Creating technologies...")
	techs := []domain.Technology{
		{Name: "Go", Category: domain.TechCategoryLanguage, IconClass: strPtr("devicon-go-original-wordmark")},
		{Name: "JavaScript", Category: domain.TechCategoryLanguage, IconClass: strPtr("devicon-javascript-plain")},
		{Name: "React", Category: domain.TechCategoryFrontend, IconClass: strPtr("devicon-react-original")},
		{Name: "Gin", Category: domain.TechCategoryBackend, IconClass: strPtr("devicon-go-plain")},
		{Name: "PostgreSQL", Category: domain.TechCategoryDatabase, IconClass: strPtr("devicon-postgresql-plain")},
		{Name: "MySQL", Category: domain.TechCategoryDatabase, IconClass: strPtr("devicon-mysql-plain")},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&techs).Error; err != nil {
		log.Fatal("technologies failed:", err)
	}

	svc := content.NewService(content.Stores{
		Profiles:     repository.NewProfileRepository(db),
		Skills:       repository.NewSkillRepository(db),
		Technologies: repository.NewTechnologyRepository(db),
		Projects:     repository.NewProjectRepository(db),
		Certificates: repository.NewCertificateRepository(db),
		Messages:     repository.NewMessageRepository(db),
		Stats:        repository.NewStatsRepository(db),
	}, nil, nil)

	// ================== PROFILE ==================
	log.Println("Creating profile...")
	if _, err := svc.UpsertProfile(ctx, content.ProfileRequest{
		Name:      "Alex Doe",
		Title:     "Backend Engineer",
		Punchline: "Building reliable services",
		About:     "I design APIs and the storage behind them.",
		Email:     "alex@example.com",
		Location:  "Remote",
		GithubURL: "https://github.com/alexdoe",
	}, nil); err != nil {
		log.Fatal("profile failed:", err)
	}

	// ================== SKILLS ==================
	log.Println("Creating skills...")
	skills := []content.SkillRequest{
		{Name: "Go", Category: "Backend", Level: "Expert", Icon: "devicon-go-original-wordmark"},
		{Name: "PostgreSQL", Category: "Backend", Level: "Advanced", Icon: "devicon-postgresql-plain"},
		{Name: "React", Category: "Frontend", Level: "Intermediate", Icon: "devicon-react-original"},
		{Name: "Docker", Category: "DevOps", Level: "Advanced", Icon: "🐳"},
	}
	for i, s := range skills {
		s.DisplayOrder = i
		if _, err := svc.AddSkill(ctx, s); err != nil {
			log.Fatalf("skill %s failed: %v", s.Name, err)
		}
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")
	projects := []struct {
		req  content.ProjectRequest
		tech []string
	}{
		{content.ProjectRequest{Title: "Portfolio API", Description: "The service behind this site.", Status: "completed", GithubURL: "https://github.com/alexdoe/portfolio"}, []string{"Go", "Gin", "PostgreSQL"}},
		{content.ProjectRequest{Title: "Dashboard", Description: "Admin panel for the portfolio.", Status: "development", DisplayOrder: 1}, []string{"React", "JavaScript"}},
	}
	for _, p := range projects {
		if _, err := svc.AddProject(ctx, p.req, p.tech, nil); err != nil {
			log.Fatalf("project %s failed: %v", p.req.Title, err)
		}
	}

	// ================== CERTIFICATES ==================
	log.Println("Creating certificates...")
	if _, err := svc.AddCertificate(ctx, content.CertificateRequest{
		Title:           "Cloud Fundamentals",
		Issuer:          "Example Academy",
		FromDate:        "2024-01-01",
		ToDate:          "2024-04-01",
		VerificationURL: "https://example.com/verify/123",
	}, nil); err != nil {
		log.Fatal("certificate failed:", err)
	}

	stats, err := svc.DashboardStats(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Seed completed: projects=%d skills=%d certificates=%d", stats.TotalProjects, stats.TotalSkills, stats.TotalCertificates)
}
