package server

import (
	"log/slog"

	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/async"
	"github.com/solargrid-io/lease-tracker/internal/export"
	"github.com/solargrid-io/lease-tracker/internal/ingest"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

// LeasesService is the single gRPC surface: portfolios, ingest,
// processing, listing, and export. Method implementations are split
// across files by concern.
type LeasesService struct {
	leasespb.UnimplementedLeasesServiceServer

	portfolios repository.PortfolioRepository
	leases     repository.LeaseRepository
	jobs       repository.ExtractJobRepository
	ingestor   ingest.Ingestor
	processor  async.FileProcessor
	exporter   *export.Service
	logger     *slog.Logger
}

func NewLeasesService(
	portfolios repository.PortfolioRepository,
	leases repository.LeaseRepository,
	jobs repository.ExtractJobRepository,
	ingestor ingest.Ingestor,
	proc async.FileProcessor,
	exporter *export.Service,
	logger *slog.Logger,
) *LeasesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeasesService{
		portfolios: portfolios,
		leases:     leases,
		jobs:       jobs,
		ingestor:   ingestor,
		processor:  proc,
		exporter:   exporter,
		logger:     logger,
	}
}
