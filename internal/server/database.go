package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	"github.com/solargrid-io/lease-tracker/internal/common"
	repo "github.com/solargrid-io/lease-tracker/internal/repository"
)

// ConnectDB establishes the database connection for the daemon and returns
// the Ent client and connection pool.
func ConnectDB(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, pool, nil
}

// PingDB pings the database to ensure it's responsive.
func PingDB(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, timeout time.Duration) error {
	if err := repo.HealthCheck(ctx, pool, timeout, logger); err != nil {
		logger.Error("database ping failed", "error", err)
		return err
	}
	return nil
}

// CloseDB closes the database connections gracefully.
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
