package server

import (
	"context"
	"slices"
	"strings"

	"github.com/solargrid-io/lease-tracker/constants"
	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/common"
	"github.com/solargrid-io/lease-tracker/internal/repository"
	"github.com/solargrid-io/lease-tracker/internal/utils"
)

// ListLeases returns extracted leases for a portfolio.
func (s *LeasesService) ListLeases(ctx context.Context, req *leasespb.ListLeasesRequest) (*leasespb.ListLeasesResponse, error) {
	portfolioID, err := s.parsePortfolioID(ctx, req.GetPortfolioId())
	if err != nil {
		return nil, err
	}

	filter, err := leaseFilter(req.GetRiskTier(), req.GetNeedsReviewOnly())
	if err != nil {
		return nil, err
	}

	leases, err := s.leases.ListLeases(ctx, portfolioID, filter)
	if err != nil {
		s.logger.Error("list leases failed", "portfolio_id", portfolioID, "error", err)
		return nil, common.InternalError("list leases failed")
	}

	out := make([]*leasespb.Lease, 0, len(leases))
	for _, l := range leases {
		out = append(out, utils.ToPBLeaseFromEntity(l))
	}
	return &leasespb.ListLeasesResponse{Leases: out}, nil
}

func leaseFilter(riskTier string, needsReviewOnly bool) (repository.ListLeasesFilter, error) {
	var filter repository.ListLeasesFilter
	tier := strings.ToLower(strings.TrimSpace(riskTier))
	if tier != "" {
		if !slices.Contains(constants.RiskTiers, tier) {
			return filter, common.InvalidArgumentErrorf("risk_tier must be one of %v", constants.RiskTiers)
		}
		filter.RiskTier = tier
	}
	if needsReviewOnly {
		yes := true
		filter.NeedsReview = &yes
	}
	return filter, nil
}
