package parsefields

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/internal/extract"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

type Pipeline struct {
	Logger     *slog.Logger
	JobsRepo   repository.ExtractJobRepository
	FilesRepo  repository.LeaseFileRepository
	LeasesRepo repository.LeaseRepository
}

func NewPipeline(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	files repository.LeaseFileRepository,
	leases repository.LeaseRepository,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Logger:     logger,
		JobsRepo:   jobs,
		FilesRepo:  files,
		LeasesRepo: leases,
	}
}

// Run executes the field parse stage for an existing text job (jobID).
// Preconditions: job is TEXT_OK with doc_text present and a valid file link.
// Effects: writes extracted_json, needs_review; upserts the lease row and
// links file -> lease.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusTextOK) || job.DocText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v doc_text_empty=%t",
			job.Status, job.DocText == nil)
	}

	p.Logger.Info("parsefields.start",
		"job_id", job.ID, "file_id", file.ID,
		"format", job.Format, "text_bytes", len(*job.DocText),
	)

	var fields extract.LeaseFields
	if job.Format == constants.JSON {
		fields, err = extract.DecodeStructured([]byte(*job.DocText))
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("decode structured: %w", err)
		}
	} else {
		fields = extract.ExtractLeaseFields(*job.DocText, file.Filename)
	}

	if missing := fields.MissingCritical(); len(missing) > 0 {
		p.Logger.Warn("parsefields.missing_fields",
			"job_id", job.ID, "file_id", file.ID, "missing", missing)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal fields: %w", err)
	}

	lease, err := p.LeasesRepo.UpsertFromFields(ctx, &repository.CreateLeaseRequest{
		File:   file,
		JobID:  job.ID,
		Fields: fields,
	})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert lease: %w", err)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, lease.ID, raw, fields.NeedsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsefields.ok",
		"job_id", job.ID, "lease_id", lease.ID,
		"name", fields.Name,
		"annual_rent", fields.AnnualRent,
		"term_years", fields.TermYears,
		"needs_review", fields.NeedsReview,
	)
	return job.ID, nil
}
