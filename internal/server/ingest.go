package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/common"
)

// IngestFile registers a single document and runs the extraction pipeline on it.
func (s *LeasesService) IngestFile(ctx context.Context, req *leasespb.IngestFileRequest) (*leasespb.IngestResponse, error) {
	portfolioID, err := s.parsePortfolioID(ctx, req.GetPortfolioId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "portfolio_id", portfolioID)
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting file ingest", "portfolio_id", portfolioID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, portfolioID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "portfolio_id", portfolioID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := &leasespb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
	}

	fileUUID, err := uuid.Parse(r.FileID)
	if err != nil {
		s.logger.Error("ingest returned invalid file id", "file_id", r.FileID, "err", err)
		resp.Error = "invalid file id"
		return resp, nil
	}
	if _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

// IngestDirectory walks a directory, registers every matching document, and
// runs the extraction pipeline over each.
func (s *LeasesService) IngestDirectory(ctx context.Context, req *leasespb.IngestDirectoryRequest) (*leasespb.IngestDirectoryResponse, error) {
	portfolioID, err := s.parsePortfolioID(ctx, req.GetPortfolioId())
	if err != nil {
		return nil, err
	}

	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "portfolio_id", portfolioID)
		return nil, common.InvalidArgumentError("root_path is required")
	}

	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "portfolio_id", portfolioID, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, portfolioID, root, skipHidden)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "portfolio_id", portfolioID,
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &leasespb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*leasespb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := &leasespb.IngestResponse{
			FileId:         r.FileID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}

		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if _, pErr := s.processor.ProcessFile(ctx, fileUUID); pErr != nil {
					s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", pErr)
					item.Error = pErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}

// ProcessFile re-runs the extraction pipeline for an already ingested file.
func (s *LeasesService) ProcessFile(ctx context.Context, req *leasespb.ProcessFileRequest) (*leasespb.ProcessFileResponse, error) {
	fid := strings.TrimSpace(req.GetFileId())
	fileID, err := uuid.Parse(fid)
	if err != nil {
		return nil, common.InvalidArgumentError("file_id must be a UUID")
	}

	jobID, err := s.processor.ProcessFile(ctx, fileID)
	if err != nil {
		s.logger.Error("process file failed", "file_id", fileID, "job_id", jobID, "error", err)
		return nil, common.InternalErrorf("process: %v", err)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, common.InternalErrorf("load job: %v", err)
	}

	resp := &leasespb.ProcessFileResponse{JobId: jobID.String()}
	if job.Status != nil {
		resp.Status = *job.Status
	}
	if job.LeaseID != nil {
		resp.LeaseId = job.LeaseID.String()
	}
	return resp, nil
}

func (s *LeasesService) parsePortfolioID(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		s.logger.Error("request missing portfolio_id")
		return uuid.Nil, common.InvalidArgumentError("portfolio_id is required")
	}
	portfolioID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid portfolio_id format", "portfolio_id", pid, "error", err)
		return uuid.Nil, common.InvalidArgumentError("portfolio_id must be a UUID")
	}
	if exists, _ := s.portfolios.Exists(ctx, portfolioID); !exists {
		s.logger.Error("portfolio not found", "portfolio_id", portfolioID)
		return uuid.Nil, common.NotFoundError("portfolio not found")
	}
	return portfolioID, nil
}
