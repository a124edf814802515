package utils

import (
	"time"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func ToPortfolio(e *ent.Portfolio) *entity.Portfolio {
	return &entity.Portfolio{
		ID:          e.ID,
		Name:        e.Name,
		Region:      e.Region,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLease(e *ent.Lease) *entity.Lease {
	return &entity.Lease{
		ID:          e.ID,
		PortfolioID: e.PortfolioID,
		Name:        e.Name,
		AnnualRent:  e.AnnualRent,
		TermYears:   e.TermYears,
		Escalator:   e.Escalator,
		RiskTier:    e.RiskTier,
		Location:    e.Location,
		Acres:       e.Acres,
		Developer:   e.Developer,
		Landowners:  e.Landowners,
		NeedsReview: e.NeedsReview,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLeaseFile(e *ent.LeaseFile) *entity.LeaseFile {
	return &entity.LeaseFile{
		ID:          e.ID,
		PortfolioID: e.PortfolioID,
		LeaseID:     e.LeaseID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		PortfolioID:          e.PortfolioID,
		LeaseID:              e.LeaseID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		DocText:              e.DocText,
		ExtractedJSON:        e.ExtractedJSON,
		Method:               e.Method,
		MethodParams:         e.MethodParams,
	}
}

func ToPBPortfolio(p *ent.Portfolio) *leasespb.Portfolio {
	return &leasespb.Portfolio{
		Id:          p.ID.String(),
		Name:        p.Name,
		Region:      strOrEmpty(p.Region),
		Description: strOrEmpty(p.Description),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBLeaseFromEntity(l *entity.Lease) *leasespb.Lease {
	return &leasespb.Lease{
		Id:          l.ID.String(),
		PortfolioId: l.PortfolioID.String(),
		Name:        l.Name,
		AnnualRent:  int64(intOrZero(l.AnnualRent)),
		TermYears:   int32(intOrZero(l.TermYears)),
		Escalator:   l.Escalator,
		RiskTier:    l.RiskTier,
		Location:    strOrEmpty(l.Location),
		Acres:       floatOrZero(l.Acres),
		Developer:   strOrEmpty(l.Developer),
		Landowners:  strOrEmpty(l.Landowners),
		NeedsReview: l.NeedsReview,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
