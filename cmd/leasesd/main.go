package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/async"
	"github.com/solargrid-io/lease-tracker/internal/common"
	"github.com/solargrid-io/lease-tracker/internal/doctext"
	"github.com/solargrid-io/lease-tracker/internal/export"
	"github.com/solargrid-io/lease-tracker/internal/ingest"
	processor "github.com/solargrid-io/lease-tracker/internal/pipeline"
	"github.com/solargrid-io/lease-tracker/internal/pipeline/parsefields"
	"github.com/solargrid-io/lease-tracker/internal/pipeline/textextract"
	repo "github.com/solargrid-io/lease-tracker/internal/repository"
	svc "github.com/solargrid-io/lease-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDUnaryInterceptor(logger)))

	portfoliosRepo := repo.NewPortfolioRepository(entc, logger)
	leasesRepo := repo.NewLeaseRepository(entc, logger)
	filesRepo := repo.NewLeaseFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	extractor := doctext.NewExtractor(doctext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
	}, logger)

	textPipe := textextract.NewPipeline(filesRepo, jobsRepo, extractor, logger)
	parsePipe := parsefields.NewPipeline(logger, jobsRepo, filesRepo, leasesRepo)
	proc := processor.NewProcessor(logger, textPipe, parsePipe)

	ingestor := ingest.NewFSIngestor(portfoliosRepo, filesRepo, logger)
	exporter := export.NewService(leasesRepo, logger)

	leasesService := svc.NewLeasesService(portfoliosRepo, leasesRepo, jobsRepo, ingestor, proc, exporter, logger)
	leasespb.RegisterLeasesServiceServer(grpcServer, leasesService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(4),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	// optional filesystem watcher: new documents in WATCH_DIRS are ingested
	// into WATCH_PORTFOLIO and queued for extraction
	startWatcher(ctx, logger, ingestor, portfoliosRepo, queue)

	logger.Info("lease-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func startWatcher(ctx context.Context, logger *slog.Logger, ingestor ingest.Ingestor, portfolios repo.PortfolioRepository, queue async.Queue) {
	dirs := os.Getenv("WATCH_DIRS")
	if dirs == "" {
		return
	}
	name := os.Getenv("WATCH_PORTFOLIO")
	if name == "" {
		name = "Watched Documents"
	}
	portfolio, err := portfolios.GetOrCreateByName(ctx, name)
	if err != nil {
		logger.Error("watch portfolio unavailable", "name", name, "error", err)
		return
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    strings.Split(dirs, ","),
		Debounce: 2 * time.Second,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dirs", dirs, "error", err)
		return
	}
	logger.Info("watching for documents", "dirs", dirs, "portfolio", portfolio.Name)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errCh:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
			case path, ok := <-evCh:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, portfolio.ID, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				if r.Deduplicated {
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				if err := queue.Enqueue(ctx, async.Job{FileID: fileID}); err != nil {
					logger.Error("enqueue failed", "file_id", r.FileID, "error", err)
				}
			}
		}
	}()
}
