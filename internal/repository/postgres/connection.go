package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Users      string
	Admins     string
	Projects   string
	Skills     string
	Categories string
	Messages   string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:      fmt.Sprintf("%susers", prefix),
		Admins:     fmt.Sprintf("%sadmins", prefix),
		Projects:   fmt.Sprintf("%sprojects", prefix),
		Skills:     fmt.Sprintf("%sskills", prefix),
		Categories: fmt.Sprintf("%scategories", prefix),
		Messages:   fmt.Sprintf("%smessages", prefix),
	}
}

// CreateConnectionPool creates a pgx connection pool, runs pending
// migrations, and verifies the connection.
//
// The dynamic table prefixes (dev_, test_, prod_) are interpolated into SQL
// before it reaches the database, so each environment gets its own distinct
// statements and prepared-statement caching stays correct.
func CreateConnectionPool(ctx context.Context, databaseURL, tablePrefix string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := Migrate(databaseURL, tablePrefix); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction;
// otherwise the pool. This lets repositories automatically participate in
// transactions when they exist.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
