package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/mailer"
	"portfolio/internal/middleware"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/service"
	serviceAuth "portfolio/internal/service/auth"
	storageMinio "portfolio/internal/storage/minio"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logOut := os.Stdout
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		f, err := config.SetupLogFile(dir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Connect, migrate, and build repositories
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, cfg.TablePrefix)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgres.NewProjectRepository(repoConfig)
	skillRepo := postgres.NewSkillRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)
	adminRepo := postgres.NewAdminRepository(repoConfig)

	// Session signing
	sessions, err := serviceAuth.NewSessionManager(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	// Mail: contact notifications + email-verification tokens
	mail := mailer.New(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword, cfg.MailTo, logger)
	verifyIssuer, err := mailer.NewTokenIssuer(cfg.VerifySecret, 48*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create verification token issuer: %v", err)
	}

	// Object storage for uploads
	storage, err := storageMinio.NewClient(ctx, storageMinio.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	// Services
	authService := serviceAuth.NewService(adminRepo, sessions, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	skillService := service.NewSkillService(skillRepo, logger)
	messageService := service.NewMessageService(messageRepo, mail, logger)
	userService := service.NewUserService(userRepo, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.CookieSecure, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	skillHandler := handler.NewSkillHandler(skillService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	uploadHandler := handler.NewUploadHandler(storage, logger)
	verifyHandler := handler.NewVerifyHandler(verifyIssuer, mail, logger)

	logger.Info("services initialized")

	// Admin-only wrapper for mutating routes
	requireSession := middleware.RequireSession(authService, cfg.CookieName)
	admin := func(h http.HandlerFunc) http.Handler {
		return requireSession(h)
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Auth routes. check-auth, user, and user-data are three separate
	// contracts the dashboard calls from different places.
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /auth/check-auth", authHandler.CheckAuth)
	mux.Handle("GET /auth/user", admin(authHandler.User))
	mux.Handle("GET /auth/user-data", admin(authHandler.UserData))
	mux.HandleFunc("POST /auth/send-verification", verifyHandler.SendVerification)
	mux.HandleFunc("GET /auth/verify-email", verifyHandler.VerifyEmail)

	// Project routes
	mux.HandleFunc("GET /projects", projectHandler.ListProjects)
	mux.HandleFunc("GET /projects/featured-projects", projectHandler.ListFeaturedProjects) // must come before {id}
	mux.HandleFunc("GET /projects/{id}", projectHandler.GetProject)
	mux.Handle("POST /projects/create", admin(projectHandler.CreateProject))
	mux.Handle("PUT /projects/{id}", admin(projectHandler.UpdateProject))
	mux.Handle("DELETE /projects/{id}", admin(projectHandler.DeleteProject))

	// Skill routes
	mux.HandleFunc("GET /skills", skillHandler.ListSkills)
	mux.HandleFunc("GET /skills/categories", skillHandler.ListCategories)
	mux.Handle("POST /admin/skill", admin(skillHandler.CreateSkill))
	mux.Handle("PUT /admin/skill/{id}", admin(skillHandler.UpdateSkill))
	mux.Handle("DELETE /admin/skill/{id}", admin(skillHandler.DeleteSkill))
	mux.Handle("POST /admin/category", admin(skillHandler.CreateCategory))
	mux.Handle("PUT /admin/category/{id}", admin(skillHandler.UpdateCategory))
	mux.Handle("DELETE /admin/category/{id}", admin(skillHandler.DeleteCategory))

	// Message routes
	mux.HandleFunc("POST /message/contact", messageHandler.SubmitContact)
	mux.Handle("GET /message", admin(messageHandler.ListMessages))
	mux.Handle("PUT /message/{id}/read", admin(messageHandler.MarkRead))
	mux.Handle("PUT /message/{id}/star", admin(messageHandler.MarkStarred))
	mux.Handle("PUT /message/{id}/archive", admin(messageHandler.MarkArchived))
	mux.Handle("DELETE /message/{id}", admin(messageHandler.DeleteMessage))

	// Profile routes
	mux.HandleFunc("GET /users", userHandler.ListUsers)
	mux.Handle("PUT /admin/user/{id}", admin(userHandler.UpdateUser))

	// Uploads
	mux.Handle("POST /admin/upload", admin(uploadHandler.Upload))

	// Build middleware chain. Order: CORS → Recovery → RequestLog → Routes
	var root http.Handler = mux
	root = middleware.RequestLog(logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
