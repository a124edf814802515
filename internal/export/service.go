package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/solargrid-io/lease-tracker/internal/entity"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	leasesRepo repository.LeaseRepository
	logger     *slog.Logger
}

func NewService(leasesRepo repository.LeaseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{leasesRepo: leasesRepo, logger: logger}
}

// ExportLeasesXLSX returns an XLSX workbook (as bytes) for the given
// portfolio, optionally narrowed by filter.
func (s *Service) ExportLeasesXLSX(ctx context.Context, portfolioID uuid.UUID, filter repository.ListLeasesFilter) ([]byte, error) {
	start := time.Now()

	leases, err := s.leasesRepo.ListLeases(ctx, portfolioID, filter)
	if err != nil {
		return nil, fmt.Errorf("query leases: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Leases"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Lease Name",
		"Developer",
		"Location",
		"Acres",
		"Annual Rent",
		"Term (Years)",
		"Escalator",
		"Risk Tier",
		"Landowners",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, l := range leases {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, l.Name)
		write(2, strOr(l.Developer, ""))
		write(3, strOr(l.Location, ""))
		if l.Acres != nil {
			write(4, *l.Acres)
		}
		if l.AnnualRent != nil {
			write(5, *l.AnnualRent)
		}
		if l.TermYears != nil {
			write(6, *l.TermYears)
		}
		write(7, l.Escalator)
		write(8, l.RiskTier)
		write(9, strOr(l.Landowners, ""))
		write(10, l.NeedsReview)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 30) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // developer
	_ = f.SetColWidth(sheet, "C", "C", 26) // location
	_ = f.SetColWidth(sheet, "D", "G", 14) // numbers
	_ = f.SetColWidth(sheet, "I", "I", 32) // landowners

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"portfolio_id", portfolioID.String(),
		"rows", len(leases),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// SummaryRow is a portfolio-level aggregate used by the batch CLI.
type SummaryRow struct {
	Leases       int
	WithRent     int
	WithTerm     int
	NeedsReview  int
	TotalRent    int
	TotalAcreage float64
}

// Summarize folds a lease list into portfolio aggregates.
func Summarize(leases []*entity.Lease) SummaryRow {
	var out SummaryRow
	out.Leases = len(leases)
	for _, l := range leases {
		if l.AnnualRent != nil {
			out.WithRent++
			out.TotalRent += *l.AnnualRent
		}
		if l.TermYears != nil {
			out.WithTerm++
		}
		if l.NeedsReview {
			out.NeedsReview++
		}
		if l.Acres != nil {
			out.TotalAcreage += *l.Acres
		}
	}
	return out
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
