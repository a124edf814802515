package server

import (
	"context"
	"strings"

	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/common"
	"github.com/solargrid-io/lease-tracker/internal/repository"
	"github.com/solargrid-io/lease-tracker/internal/utils"
)

// CreatePortfolio creates a new portfolio.
func (s *LeasesService) CreatePortfolio(ctx context.Context, req *leasespb.CreatePortfolioRequest) (*leasespb.CreatePortfolioResponse, error) {
	name := strings.TrimSpace(req.GetName())

	v := common.NewValidator().Field("name", name, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.portfolios.CreatePortfolio(ctx, &repository.Portfolio{
		Name:        name,
		Region:      strings.TrimSpace(req.GetRegion()),
		Description: strings.TrimSpace(req.GetDescription()),
	})
	if err != nil {
		s.logger.Error("create portfolio failed", "name", name, "error", err)
		return nil, common.InternalError("create portfolio failed")
	}

	return &leasespb.CreatePortfolioResponse{
		Portfolio: utils.ToPBPortfolio(p),
	}, nil
}

// ListPortfolios lists all the portfolios.
func (s *LeasesService) ListPortfolios(ctx context.Context, _ *leasespb.ListPortfoliosRequest) (*leasespb.ListPortfoliosResponse, error) {
	plist, err := s.portfolios.ListPortfolios(ctx)
	if err != nil {
		s.logger.Error("list portfolios failed", "error", err)
		return nil, common.InternalError("list portfolios failed")
	}

	out := make([]*leasespb.Portfolio, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBPortfolio(p))
	}
	return &leasespb.ListPortfoliosResponse{Portfolios: out}, nil
}
