package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

// DBResult bundles the opened client with its cleanup function so callers
// can defer a single call regardless of backend.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for sqlite
	Cleanup func()
}

// InitDatabase opens either an in-memory sqlite database (for local batch
// runs) or the configured Postgres database.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inmem {
		client, err := repository.OpenSQLite(ctx, ":memory:", logger)
		if err != nil {
			return nil, err
		}
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close sqlite client", "error", err)
				}
			},
		}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(client, pool, logger)
		},
	}, nil
}
