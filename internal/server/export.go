package server

import (
	"context"

	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/common"
)

// ExportLeases produces an XLSX workbook of the portfolio's leases.
func (s *LeasesService) ExportLeases(ctx context.Context, req *leasespb.ExportLeasesRequest) (*leasespb.ExportLeasesResponse, error) {
	portfolioID, err := s.parsePortfolioID(ctx, req.GetPortfolioId())
	if err != nil {
		return nil, err
	}

	filter, err := leaseFilter(req.GetRiskTier(), req.GetNeedsReviewOnly())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportLeasesXLSX(ctx, portfolioID, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "portfolio_id", portfolioID, "err", err)
		return nil, common.InternalError("export failed")
	}

	return &leasespb.ExportLeasesResponse{Xlsx: xlsx}, nil
}
