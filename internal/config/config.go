package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// Session configuration
	SessionSecret string
	CookieName    string
	CookieSecure  bool
	// Object storage (uploads: project images, profile image, resume)
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	// Mail (contact notifications + email verification tokens)
	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailTo       string
	VerifySecret string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		TablePrefix: tablePrefix,
		// Session configuration
		SessionSecret: getEnv("SESSION_SECRET", ""),
		CookieName:    getEnv("SESSION_COOKIE", "portfolio_session"),
		CookieSecure:  env == "prod",
		// Object storage
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "portfolio-uploads"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		// Mail
		MailHost:     getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:     getEnv("MAIL_PORT", "587"),
		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		MailTo:       getEnv("MAIL_TO", ""),
		VerifySecret: getEnv("VERIFY_SECRET", ""),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
