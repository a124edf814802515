package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	entlease "github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/internal/entity"
	"github.com/solargrid-io/lease-tracker/internal/extract"
	"github.com/solargrid-io/lease-tracker/internal/utils"
)

// CreateLeaseRequest wraps parameters for persisting an extracted lease.
type CreateLeaseRequest struct {
	File   *ent.LeaseFile
	JobID  uuid.UUID
	Fields extract.LeaseFields
}

// ListLeasesFilter narrows ListLeases results. Zero value lists everything
// in the portfolio.
type ListLeasesFilter struct {
	NeedsReview *bool
	RiskTier    string
}

type LeaseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error)
	ListLeases(ctx context.Context, portfolioID uuid.UUID, filter ListLeasesFilter) ([]*entity.Lease, error)
	UpsertFromFields(ctx context.Context, request *CreateLeaseRequest) (*entity.Lease, error)
}

type leaseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLeaseRepository(client *ent.Client, logger *slog.Logger) LeaseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &leaseRepository{
		client: client,
		logger: logger,
	}
}

func (r *leaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	row, err := r.client.Lease.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToLease(row), nil
}

func (r *leaseRepository) ListLeases(ctx context.Context, portfolioID uuid.UUID, filter ListLeasesFilter) ([]*entity.Lease, error) {
	q := r.client.Lease.Query().Where(entlease.PortfolioID(portfolioID))
	if filter.NeedsReview != nil {
		q = q.Where(entlease.NeedsReview(*filter.NeedsReview))
	}
	if filter.RiskTier != "" {
		q = q.Where(entlease.RiskTier(filter.RiskTier))
	}
	rows, err := q.Order(entlease.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list leases", "portfolio_id", portfolioID, "error", err)
		return nil, err
	}

	result := make([]*entity.Lease, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLease(row)
	}
	return result, nil
}

// UpsertFromFields writes extracted fields as a lease row. A file already
// linked to a lease updates that lease in place; otherwise a new lease is
// created and linked back to the file.
func (r *leaseRepository) UpsertFromFields(ctx context.Context, request *CreateLeaseRequest) (*entity.Lease, error) {
	f := request.Fields
	file := request.File

	riskTier := f.RiskTier
	if riskTier == "" {
		riskTier = entlease.DefaultRiskTier
	}

	if file.LeaseID != nil {
		row, err := r.client.Lease.UpdateOneID(*file.LeaseID).
			SetName(f.Name).
			SetNillableAnnualRent(f.AnnualRent).
			SetNillableTermYears(f.TermYears).
			SetEscalator(f.Escalator).
			SetRiskTier(riskTier).
			SetNillableLocation(f.Location).
			SetNillableAcres(f.Acres).
			SetNillableDeveloper(f.Developer).
			SetNillableLandowners(f.Landowners).
			SetNeedsReview(f.NeedsReview).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update lease", "lease_id", *file.LeaseID, "job_id", request.JobID, "error", err)
			return nil, err
		}
		return utils.ToLease(row), nil
	}

	row, err := r.client.Lease.Create().
		SetPortfolioID(file.PortfolioID).
		SetName(f.Name).
		SetNillableAnnualRent(f.AnnualRent).
		SetNillableTermYears(f.TermYears).
		SetEscalator(f.Escalator).
		SetRiskTier(riskTier).
		SetNillableLocation(f.Location).
		SetNillableAcres(f.Acres).
		SetNillableDeveloper(f.Developer).
		SetNillableLandowners(f.Landowners).
		SetNeedsReview(f.NeedsReview).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create lease", "portfolio_id", file.PortfolioID, "job_id", request.JobID, "error", err)
		return nil, err
	}

	if err := r.client.LeaseFile.UpdateOneID(file.ID).SetLeaseID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to link lease to file", "file_id", file.ID, "lease_id", row.ID, "error", err)
		return nil, err
	}

	return utils.ToLease(row), nil
}
