package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/internal/doctext"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

type Pipeline struct {
	FilesRepo     repository.LeaseFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor doctext.TextExtractor
	Log           *slog.Logger
}

func NewPipeline(files repository.LeaseFileRepository, jobs repository.ExtractJobRepository, tx doctext.TextExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Log: log}
}

// Run starts an extract_job, acquires document text, and persists it.
// Returns the job ID and the extraction summary. The field parse stage is NOT called.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, doctext.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, doctext.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, doctext.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, row.PortfolioID, format)
	if err != nil {
		return uuid.Nil, doctext.TextExtractionResult{}, err
	}

	var res doctext.TextExtractionResult
	if format == constants.JSON {
		// structured input carries the fields already; store the raw
		// document and let the parse stage validate it
		b, err := os.ReadFile(row.SourcePath)
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, res, fmt.Errorf("read json: %w", err)
		}
		res = doctext.TextExtractionResult{
			Text:       string(b),
			Pages:      1,
			SourceType: constants.JSON,
			Method:     "json-read",
			Confidence: 1.0,
		}
	} else {
		res, err = p.TextExtractor.Extract(ctx, row.SourcePath)
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, res, err
		}
	}

	if res.Empty() {
		p.Log.Warn("textextract.empty", "job_id", job.ID, "file_id", row.ID, "path", row.SourcePath)
	}

	params := map[string]any{"pages": res.Pages, "source_type": res.SourceType}
	if err := p.JobsRepo.FinishTextSuccess(ctx, job.ID, res.Text, res.Method, res.Confidence, params); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
