package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/solargrid-io/lease-tracker/internal/entity"
	"github.com/solargrid-io/lease-tracker/internal/repository"
)

type fakeLeaseRepo struct {
	leases []*entity.Lease
}

func (f *fakeLeaseRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Lease, error) {
	return nil, nil
}

func (f *fakeLeaseRepo) ListLeases(_ context.Context, _ uuid.UUID, _ repository.ListLeasesFilter) ([]*entity.Lease, error) {
	return f.leases, nil
}

func (f *fakeLeaseRepo) UpsertFromFields(_ context.Context, _ *repository.CreateLeaseRequest) (*entity.Lease, error) {
	return nil, nil
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(s string) *string     { return &s }

func TestExportLeasesXLSX(t *testing.T) {
	repo := &fakeLeaseRepo{leases: []*entity.Lease{
		{
			Name:       "Smith Family Lease",
			AnnualRent: intp(50000),
			TermYears:  intp(25),
			Escalator:  0.02,
			RiskTier:   "medium",
			Location:   strp("Smith County, Wyoming"),
			Acres:      floatp(640),
			Developer:  strp("Sunrise Solar Energy Llc"),
		},
		{
			Name:        "Short Term Lease",
			TermYears:   intp(5),
			RiskTier:    "high",
			NeedsReview: true,
		},
	}}

	svc := NewService(repo, nil)
	xlsx, err := svc.ExportLeasesXLSX(context.Background(), uuid.New(), repository.ListLeasesFilter{})
	if err != nil {
		t.Fatalf("ExportLeasesXLSX: %v", err)
	}
	if len(xlsx) == 0 {
		t.Fatal("empty workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Leases")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 leases", len(rows))
	}
	if rows[0][0] != "Lease Name" {
		t.Errorf("header[0] = %q", rows[0][0])
	}
	if rows[1][0] != "Smith Family Lease" {
		t.Errorf("row 1 name = %q", rows[1][0])
	}
	if rows[1][4] != "50000" {
		t.Errorf("row 1 annual rent = %q", rows[1][4])
	}
	if rows[2][7] != "high" {
		t.Errorf("row 2 risk tier = %q", rows[2][7])
	}
}

func TestSummarize(t *testing.T) {
	leases := []*entity.Lease{
		{AnnualRent: intp(50000), TermYears: intp(25), Acres: floatp(640)},
		{AnnualRent: intp(12000), NeedsReview: true},
		{},
	}
	got := Summarize(leases)
	if got.Leases != 3 || got.WithRent != 2 || got.WithTerm != 1 || got.NeedsReview != 1 {
		t.Errorf("counts = %+v", got)
	}
	if got.TotalRent != 62000 {
		t.Errorf("TotalRent = %d", got.TotalRent)
	}
	if got.TotalAcreage != 640 {
		t.Errorf("TotalAcreage = %v", got.TotalAcreage)
	}
}
