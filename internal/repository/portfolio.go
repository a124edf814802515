package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

type Portfolio struct {
	Name        string
	Region      string
	Description string
}

type PortfolioRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Portfolio, error)
	CreatePortfolio(ctx context.Context, p *Portfolio) (*ent.Portfolio, error)
	ListPortfolios(ctx context.Context) ([]*ent.Portfolio, error)
	GetOrCreateByName(ctx context.Context, name string) (*ent.Portfolio, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type portfolioRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPortfolioRepository(client *ent.Client, logger *slog.Logger) PortfolioRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &portfolioRepository{
		client: client,
		logger: logger,
	}
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Portfolio, error) {
	return r.client.Portfolio.
		Query().
		Where(portfolio.ID(id)).
		Only(ctx)
}

func (r *portfolioRepository) CreatePortfolio(ctx context.Context, p *Portfolio) (*ent.Portfolio, error) {
	builder := r.client.Portfolio.Create().
		SetName(p.Name)
	if p.Region != "" {
		builder = builder.SetRegion(p.Region)
	}
	if p.Description != "" {
		builder = builder.SetDescription(p.Description)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create portfolio", "name", p.Name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *portfolioRepository) ListPortfolios(ctx context.Context) ([]*ent.Portfolio, error) {
	plist, err := r.client.Portfolio.Query().Order(portfolio.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list portfolios", "error", err)
		return nil, err
	}
	return plist, nil
}

func (r *portfolioRepository) GetOrCreateByName(ctx context.Context, name string) (*ent.Portfolio, error) {
	row, err := r.client.Portfolio.Query().Where(portfolio.Name(name)).Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up portfolio by name", "name", name, "error", err)
		return nil, err
	}
	return r.CreatePortfolio(ctx, &Portfolio{Name: name})
}

func (r *portfolioRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Portfolio.Query().Where(portfolio.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check portfolio existence", "portfolio_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
