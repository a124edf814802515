package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

// FSIngestor reads lease documents from the local filesystem.
type FSIngestor struct {
	Portfolios repository.PortfolioRepository
	Files      repository.LeaseFileRepository
	logger     *slog.Logger
}

func NewFSIngestor(p repository.PortfolioRepository, f repository.LeaseFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Portfolios: p, Files: f, logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, portfolioID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.logger.Error("ingest.abs_path", "path", path, "error", err)
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		i.logger.Warn("ingest.unsupported_ext", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	exists, err := i.Portfolios.Exists(ctx, portfolioID)
	if err != nil {
		return out, fmt.Errorf("check portfolio: %w", err)
	}
	if !exists {
		return out, fmt.Errorf("portfolio %s not found", portfolioID)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.logger.Error("ingest.open", "path", abs, "error", err)
		return out, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.logger.Error("ingest.hash", "path", abs, "error", err)
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.Files.UpsertByHash(ctx, portfolioID, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	i.logger.Info("ingest.ok",
		"portfolio_id", portfolioID,
		"file_id", out.FileID,
		"path", abs,
		"dedup", dedup,
	)
	return out, nil
}
