package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"portfolio/pkg/config"
	"portfolio/pkg/database"
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/model"
	"portfolio/services/api/internal/repo/persistent"
	"portfolio/services/api/internal/usecase"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var hashPassword string
	flag.StringVar(&hashPassword, "hash-password", "", "print a bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if hashPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(hashPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash password: %v", err))
		}
		fmt.Println(string(hash))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if cfg.DBAutoMigrate || cfg.DBDriver == "sqlite" {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(context.Background(), db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seed creates docs through uc unless the collection already has content.
func seed[D entity.Document](ctx context.Context, log *logger.Logger, name string, uc usecase.CollectionUseCase[D], docs []D) error {
	count, err := uc.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if count > 0 {
		log.Info("Collection %s already has %d documents, skipping", name, count)
		return nil
	}

	for _, doc := range docs {
		if _, err := uc.Create(ctx, doc); err != nil {
			return fmt.Errorf("failed to create %s document: %w", name, err)
		}
	}
	log.Info("Created %d %s documents", len(docs), name)
	return nil
}

func seedDatabase(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	notifier := usecase.NopNotifier{}

	posts := usecase.NewPostUseCase(persistent.NewPostRepository(db), nil, notifier, log)
	if err := seed[*entity.Post](ctx, log, entity.CollectionBlog, posts, []*entity.Post{
		{
			Title:    "Shipping a portfolio backend in Go",
			Slug:     "portfolio-backend-in-go",
			Excerpt:  "Notes on moving the site API onto gin and gorm.",
			Content:  "The site started as a handful of serverless routes...",
			Category: "engineering",
			ReadTime: "6 min read",
			Date:     time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
			Tags:     []string{"go", "gin", "gorm"},
		},
		{
			Title:    "What I learned from a year of chess puzzles",
			Slug:     "a-year-of-chess-puzzles",
			Excerpt:  "Pattern recognition and patience.",
			Content:  "Every morning for a year I solved three puzzles...",
			Category: "personal",
			ReadTime: "4 min read",
			Date:     time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			Tags:     []string{"chess"},
		},
	}); err != nil {
		return err
	}

	certificates := usecase.NewCertificateUseCase(persistent.NewCertificateRepository(db), nil, notifier, log)
	if err := seed[*entity.Certificate](ctx, log, entity.CollectionCertificates, certificates, []*entity.Certificate{
		{
			Title:     "Machine Learning Specialization",
			Issuer:    "Coursera",
			IssueDate: "2023-11",
			Skills:    []string{"supervised learning", "neural networks"},
			VerifyURL: "https://coursera.org/verify/example",
		},
	}); err != nil {
		return err
	}

	education := usecase.NewEducationUseCase(persistent.NewEducationRepository(db), nil, notifier, log)
	if err := seed[*entity.Education](ctx, log, entity.CollectionEducation, education, []*entity.Education{
		{
			Degree:       "B.Sc. Computer Science",
			Institution:  "State University",
			Period:       "2019 - 2023",
			Location:     "Austin, TX",
			GPA:          "3.8",
			Achievements: []string{"Dean's list", "ACM chapter lead"},
		},
	}); err != nil {
		return err
	}

	experience := usecase.NewExperienceUseCase(persistent.NewExperienceRepository(db), nil, notifier, log)
	if err := seed[*entity.Experience](ctx, log, entity.CollectionExperience, experience, []*entity.Experience{
		{
			Title:        "Software Engineer",
			Company:      "Acme Corp",
			Location:     "Remote",
			Period:       "2023 - Present",
			Type:         entity.ExperienceFullTime,
			Achievements: []string{"Cut API p99 latency by 40%"},
			Technologies: []string{"Go", "PostgreSQL", "Redis"},
			Website:      "https://acme.example",
		},
		{
			Title:        "Backend Intern",
			Company:      "Startup Inc",
			Location:     "Austin, TX",
			Period:       "Summer 2022",
			Type:         entity.ExperienceInternship,
			Technologies: []string{"Python", "Docker"},
		},
	}); err != nil {
		return err
	}

	projects := usecase.NewProjectUseCase(persistent.NewProjectRepository(db), nil, notifier, log)
	if err := seed[*entity.Project](ctx, log, entity.CollectionProjects, projects, []*entity.Project{
		{
			Title:       "Portfolio site",
			Description: "This site: Next.js frontend with a Go API.",
			URL:         "https://example.dev",
			Category:    entity.CategoryWebsite,
			Status:      entity.StatusCompleted,
			Featured:    true,
		},
		{
			Title:       "Chess move classifier",
			Description: "A small CNN that labels blunders in amateur games.",
			URL:         "https://github.com/example/chess-classifier",
			Category:    entity.CategoryML,
			Status:      entity.StatusInProgress,
		},
	}); err != nil {
		return err
	}

	reviews := usecase.NewReviewUseCase(persistent.NewReviewRepository(db), nil, notifier, log)
	return seed[*entity.Review](ctx, log, entity.CollectionReviews, reviews, []*entity.Review{
		{
			Name:    "Jordan Lee",
			Role:    "Engineering Manager",
			Company: "Acme Corp",
			Text:    "Reliable and quick to ship.",
		},
	})
}
