package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/internal/common"
	"github.com/solargrid-io/lease-tracker/internal/doctext"
	"github.com/solargrid-io/lease-tracker/internal/export"
	"github.com/solargrid-io/lease-tracker/internal/ingest"
	processor "github.com/solargrid-io/lease-tracker/internal/pipeline"
	"github.com/solargrid-io/lease-tracker/internal/pipeline/parsefields"
	"github.com/solargrid-io/lease-tracker/internal/pipeline/textextract"
	repo "github.com/solargrid-io/lease-tracker/internal/repository"
)

func printError(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory to process lease documents from (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		portfolio = flag.String("portfolio", "Local Batch", "portfolio name to ingest under")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "leases.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	portfoliosRepo := repo.NewPortfolioRepository(entc, logger)
	leasesRepo := repo.NewLeaseRepository(entc, logger)
	filesRepo := repo.NewLeaseFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	p, err := portfoliosRepo.GetOrCreateByName(ctx, *portfolio)
	if err != nil {
		logger.Error("failed to get or create portfolio", "name", *portfolio, "error", err)
		os.Exit(1)
	}
	logger.Info("using portfolio", "id", p.ID, "name", p.Name)

	extractor := doctext.NewExtractor(doctext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
	}, logger)
	textPipe := textextract.NewPipeline(filesRepo, jobsRepo, extractor, logger)
	parsePipe := parsefields.NewPipeline(logger, jobsRepo, filesRepo, leasesRepo)
	proc := processor.NewProcessor(logger, textPipe, parsePipe)

	ingestor := ingest.NewFSIngestor(portfoliosRepo, filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "portfolio", p.ID)
	results, stats, err := ingestor.IngestDirectory(ctx, p.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	processed, failed := 0, 0
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		if _, err := proc.ProcessFile(ctx, fileID); err != nil {
			logger.Error("processing failed", "file_id", r.FileID, "path", r.SourcePath, "error", err)
			failed++
			continue
		}
		processed++
	}
	logger.Info("processing complete", "processed", processed, "failed", failed)

	leases, err := leasesRepo.ListLeases(ctx, p.ID, repo.ListLeasesFilter{})
	if err != nil {
		logger.Error("failed to list leases", "error", err)
		os.Exit(1)
	}
	summary := export.Summarize(leases)
	logger.Info("portfolio summary",
		"leases", summary.Leases,
		"with_rent", summary.WithRent,
		"with_term", summary.WithTerm,
		"needs_review", summary.NeedsReview,
		"total_rent", summary.TotalRent,
		"total_acreage", summary.TotalAcreage)

	exporter := export.NewService(leasesRepo, logger)
	xlsx, err := exporter.ExportLeasesXLSX(ctx, p.ID, repo.ListLeasesFilter{})
	if err != nil {
		logger.Error("failed to export workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out, "bytes", len(xlsx))
}
