package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	entfile "github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
)

type LeaseFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.LeaseFile, error)
	GetByPortfolioAndHash(ctx context.Context, portfolioID uuid.UUID, hash []byte) (*ent.LeaseFile, error)
	Create(ctx context.Context, portfolioID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.LeaseFile, error)
	UpsertByHash(ctx context.Context, portfolioID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.LeaseFile, bool, error)
	LinkLease(ctx context.Context, fileID, leaseID uuid.UUID) error
}

type leaseFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLeaseFileRepository(entc *ent.Client, logger *slog.Logger) LeaseFileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &leaseFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *leaseFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.LeaseFile, error) {
	return r.ent.LeaseFile.Get(ctx, id)
}

func (r *leaseFileRepo) GetByPortfolioAndHash(ctx context.Context, portfolioID uuid.UUID, hash []byte) (*ent.LeaseFile, error) {
	row, err := r.ent.LeaseFile.Query().
		Where(
			entfile.PortfolioID(portfolioID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *leaseFileRepo) Create(ctx context.Context, portfolioID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.LeaseFile, error) {
	row, err := r.ent.LeaseFile.Create().
		SetPortfolioID(portfolioID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create lease file", "portfolio_id", portfolioID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *leaseFileRepo) UpsertByHash(ctx context.Context, portfolioID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.LeaseFile, bool, error) {
	if existing, err := r.GetByPortfolioAndHash(ctx, portfolioID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, portfolioID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert lease file by hash", "portfolio_id", portfolioID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *leaseFileRepo) LinkLease(ctx context.Context, fileID, leaseID uuid.UUID) error {
	err := r.ent.LeaseFile.UpdateOneID(fileID).SetLeaseID(leaseID).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to link lease to file", "file_id", fileID, "lease_id", leaseID, "error", err)
	}
	return err
}
