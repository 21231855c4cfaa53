// Seeds a fresh database with the admin login, the owner profile, and a
// starter set of categories, skills, and projects. Safe to re-run: existing
// rows are detected and skipped.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/repository/postgres"

	"github.com/joho/godotenv"
)

//go:embed seed_data.yaml
var seedYAML []byte

type seedUser struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Email       string `yaml:"email"`
	Bio         string `yaml:"bio"`
	Location    string `yaml:"location"`
	GithubURL   string `yaml:"github_url"`
	LinkedinURL string `yaml:"linkedin_url"`
}

type seedSkill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Icon  string `yaml:"icon"`
}

type seedCategory struct {
	Name         string      `yaml:"name"`
	DisplayOrder int         `yaml:"display_order"`
	Skills       []seedSkill `yaml:"skills"`
}

type seedProject struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Details      string   `yaml:"details"`
	Technologies []string `yaml:"technologies"`
	Category     string   `yaml:"category"`
	Featured     bool     `yaml:"featured"`
}

type seedData struct {
	User       seedUser       `yaml:"user"`
	Categories []seedCategory `yaml:"categories"`
	Projects   []seedProject  `yaml:"projects"`
}

// The repositories bind created_at/updated_at explicitly, so seeded
// entities must carry real timestamps rather than relying on column
// defaults.

func buildUser(u seedUser, now time.Time) *models.User {
	return &models.User{
		Name:      u.Name,
		Title:     u.Title,
		Email:     u.Email,
		Bio:       u.Bio,
		Location:  u.Location,
		GithubURL: u.GithubURL,
		LinkedIn:  u.LinkedinURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func buildCategory(c seedCategory, now time.Time) *models.Category {
	return &models.Category{
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func buildSkill(categoryID string, s seedSkill, now time.Time) *models.Skill {
	return &models.Skill{
		CategoryID: categoryID,
		Name:       s.Name,
		Level:      s.Level,
		Icon:       s.Icon,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func buildProject(p seedProject, now time.Time) *models.Project {
	return &models.Project{
		Title:        p.Title,
		Description:  p.Description,
		Details:      p.Details,
		Technologies: p.Technologies,
		Category:     p.Category,
		Featured:     p.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		log.Fatalf("Failed to parse seed data: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, cfg.TablePrefix)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	adminRepo := postgres.NewAdminRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)
	skillRepo := postgres.NewSkillRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)

	now := time.Now()

	// Admin login comes from the environment, never from the YAML file
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	if _, err := adminRepo.GetByUsername(ctx, username); err == nil {
		logger.Info("admin already exists, skipping", "username", username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatalf("Failed to look up admin: %v", err)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &models.Admin{
			Username:     username,
			PasswordHash: string(hash),
			Role:         "admin",
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		logger.Info("admin created", "username", username)
	}

	// Owner profile
	existing, err := userRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}
	if len(existing) > 0 {
		logger.Info("profile already exists, skipping")
	} else {
		user := buildUser(data.User, now)
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
		logger.Info("profile created", "name", user.Name)
	}

	// Categories and skills, atomically: a half-seeded skills page is
	// worse than none.
	categories, err := skillRepo.ListCategories(ctx)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) > 0 {
		logger.Info("categories already exist, skipping")
	} else {
		txManager := postgres.NewTransactionManager(pool)
		err := txManager.ExecTx(ctx, func(ctx context.Context) error {
			for _, c := range data.Categories {
				category := buildCategory(c, now)
				if err := skillRepo.CreateCategory(ctx, category); err != nil {
					return fmt.Errorf("create category %q: %w", c.Name, err)
				}
				for _, s := range c.Skills {
					if err := skillRepo.CreateSkill(ctx, buildSkill(category.ID, s, now)); err != nil {
						return fmt.Errorf("create skill %q: %w", s.Name, err)
					}
				}
				logger.Info("category seeded", "name", c.Name, "skills", len(c.Skills))
			}
			return nil
		})
		if err != nil {
			log.Fatalf("Failed to seed skills: %v", err)
		}
	}

	// Projects
	projects, err := projectRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) > 0 {
		logger.Info("projects already exist, skipping")
	} else {
		for _, p := range data.Projects {
			if err := projectRepo.Create(ctx, buildProject(p, now)); err != nil {
				log.Fatalf("Failed to create project %q: %v", p.Title, err)
			}
		}
		logger.Info("projects seeded", "count", len(data.Projects))
	}

	logger.Info("seed complete")
}
