package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/solargrid-io/lease-tracker/gen/ent"
	leasespb "github.com/solargrid-io/lease-tracker/gen/proto/leases/v1"
	"github.com/solargrid-io/lease-tracker/internal/ingest"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

type fakePortfolios struct {
	exists bool
}

func (f *fakePortfolios) GetByID(context.Context, uuid.UUID) (*ent.Portfolio, error) {
	return nil, nil
}

func (f *fakePortfolios) CreatePortfolio(context.Context, *repository.Portfolio) (*ent.Portfolio, error) {
	return nil, nil
}

func (f *fakePortfolios) ListPortfolios(context.Context) ([]*ent.Portfolio, error) {
	return nil, nil
}

func (f *fakePortfolios) GetOrCreateByName(context.Context, string) (*ent.Portfolio, error) {
	return nil, nil
}

func (f *fakePortfolios) Exists(context.Context, uuid.UUID) (bool, error) {
	return f.exists, nil
}

type fakeIngestor struct {
	result ingest.IngestionResult
}

func (f *fakeIngestor) IngestPath(context.Context, uuid.UUID, string) (ingest.IngestionResult, error) {
	return f.result, nil
}

func (f *fakeIngestor) IngestDirectory(context.Context, uuid.UUID, string, bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type fakeFileProcessor struct {
	calls int
}

func (f *fakeFileProcessor) ProcessFile(context.Context, uuid.UUID) (uuid.UUID, error) {
	f.calls++
	return uuid.New(), nil
}

func TestIngestFileInvalidFileID(t *testing.T) {
	proc := &fakeFileProcessor{}
	s := NewLeasesService(
		&fakePortfolios{exists: true}, nil, nil,
		&fakeIngestor{result: ingest.IngestionResult{
			FileID:     "not-a-uuid",
			SourcePath: "/docs/a.pdf",
			UploadedAt: time.Now().UTC(),
		}},
		proc, nil, nil,
	)

	resp, err := s.IngestFile(context.Background(), &leasespb.IngestFileRequest{
		PortfolioId: uuid.NewString(),
		Path:        "/docs/a.pdf",
	})
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}
	if resp.Error == "" {
		t.Error("want error in response for unparseable file id")
	}
	if proc.calls != 0 {
		t.Errorf("pipeline ran %d times, want 0", proc.calls)
	}
}

func TestIngestFilePortfolioNotFound(t *testing.T) {
	s := NewLeasesService(
		&fakePortfolios{exists: false}, nil, nil,
		&fakeIngestor{}, &fakeFileProcessor{}, nil, nil,
	)

	_, err := s.IngestFile(context.Background(), &leasespb.IngestFileRequest{
		PortfolioId: uuid.NewString(),
		Path:        "/docs/a.pdf",
	})
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want NotFound", status.Code(err))
	}
}
