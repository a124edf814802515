package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID, portfolioID uuid.UUID, format string) (*ent.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.LeaseFile, error)
	FinishTextSuccess(ctx context.Context, jobID uuid.UUID, docText, method string, confidence float32, methodParams map[string]any) error
	FinishParseSuccess(ctx context.Context, jobID, leaseID uuid.UUID, extracted json.RawMessage, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID, portfolioID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetPortfolioID(portfolioID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Get(ctx, jobID)
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.LeaseFile, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := r.ent.LeaseFile.Get(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}

func (r *extractJobRepo) FinishTextSuccess(ctx context.Context, jobID uuid.UUID, docText, method string, confidence float32, methodParams map[string]any) error {
	var params []byte
	if methodParams != nil {
		if b, err := json.Marshal(methodParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetDocText(docText).
		SetMethod(method).
		SetMethodParams(params).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text stage done", "job_id", jobID, "method", method, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID, leaseID uuid.UUID, extracted json.RawMessage, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetLeaseID(leaseID).
		SetExtractedJSON(extracted).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished", "job_id", jobID, "lease_id", leaseID, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
