package extract

import (
	"reflect"
	"testing"
)

func TestExtractLeaseFields_FullDocument(t *testing.T) {
	text := `SOLAR GROUND LEASE AGREEMENT

This lease is entered into by Smith Family Farms and Lessee: Sunrise Solar
Energy LLC for approximately 640 acres situated in Smith County, Wyoming.
The Annual Rental Payment: $50,000 shall be due each January, escalating
2% annually. The lease shall run for 25 years.`

	got := ExtractLeaseFields(text, "smith_family_lease.pdf")

	if got.Name != "Smith Family Lease" {
		t.Errorf("Name = %q, want %q", got.Name, "Smith Family Lease")
	}
	if got.AnnualRent == nil || *got.AnnualRent != 50000 {
		t.Errorf("AnnualRent = %v, want 50000", got.AnnualRent)
	}
	if got.TermYears == nil || *got.TermYears != 25 {
		t.Errorf("TermYears = %v, want 25", got.TermYears)
	}
	if got.Escalator != 0.02 {
		t.Errorf("Escalator = %v, want 0.02", got.Escalator)
	}
	if got.Acres == nil || *got.Acres != 640 {
		t.Errorf("Acres = %v, want 640", got.Acres)
	}
	if got.Location == nil || *got.Location != "Smith County, Wyoming" {
		t.Errorf("Location = %v, want Smith County, Wyoming", got.Location)
	}
	if got.Developer == nil || *got.Developer != "Sunrise Solar Energy Llc" {
		t.Errorf("Developer = %v", got.Developer)
	}
	if got.RiskTier != "medium" {
		t.Errorf("RiskTier = %q, want medium", got.RiskTier)
	}
	if got.NeedsReview {
		t.Error("NeedsReview = true, want false")
	}
	if got.Landowners != nil {
		t.Errorf("Landowners = %v, want nil", got.Landowners)
	}
}

func TestExtractLeaseFields_RentAndTermOnly(t *testing.T) {
	text := "Annual Rental Payment: $50,000 payable for 25 years."
	got := ExtractLeaseFields(text, "doc.txt")

	if got.AnnualRent == nil || *got.AnnualRent != 50000 {
		t.Fatalf("AnnualRent = %v, want 50000", got.AnnualRent)
	}
	if got.TermYears == nil || *got.TermYears != 25 {
		t.Fatalf("TermYears = %v, want 25", got.TermYears)
	}
	if got.Escalator != 0.0 {
		t.Errorf("Escalator = %v, want 0.0", got.Escalator)
	}
	if got.NeedsReview {
		t.Error("NeedsReview = true, want false")
	}
}

func TestExtractLeaseFields_PerAcreOnly(t *testing.T) {
	// No absolute rent figure anywhere: the per-acre rate times acreage
	// supplies the rent.
	text := "The property comprises 640 acres and the rate shall be $15 per acre."
	got := ExtractLeaseFields(text, "doc.txt")

	if got.AnnualRent == nil || *got.AnnualRent != 9600 {
		t.Fatalf("AnnualRent = %v, want 9600", got.AnnualRent)
	}
	if got.Acres == nil || *got.Acres != 640 {
		t.Fatalf("Acres = %v, want 640", got.Acres)
	}
}

func TestExtractLeaseFields_RenewalTotal(t *testing.T) {
	text := "This lease runs for 10 years with 2 renewal terms of 10 years each."
	got := ExtractLeaseFields(text, "doc.txt")

	// candidates include 10 and 10 + 2×10 = 30; 30 is the in-range maximum
	if got.TermYears == nil || *got.TermYears != 30 {
		t.Fatalf("TermYears = %v, want 30", got.TermYears)
	}
	if got.NeedsReview {
		t.Error("NeedsReview = true, want false")
	}
}

func TestExtractLeaseFields_ShortTermFlagsReview(t *testing.T) {
	text := "This agreement shall continue for 5 years."
	got := ExtractLeaseFields(text, "doc.txt")

	if got.TermYears == nil || *got.TermYears != 5 {
		t.Fatalf("TermYears = %v, want 5", got.TermYears)
	}
	if !got.NeedsReview {
		t.Error("NeedsReview = false, want true for term below 10")
	}
}

func TestExtractLeaseFields_EmptyInput(t *testing.T) {
	got := ExtractLeaseFields("", "empty.pdf")

	if got.AnnualRent != nil || got.TermYears != nil || got.Location != nil ||
		got.Acres != nil || got.Developer != nil || got.Landowners != nil {
		t.Errorf("expected all optionals nil, got %+v", got)
	}
	if got.Escalator != 0.0 {
		t.Errorf("Escalator = %v, want 0.0", got.Escalator)
	}
	if got.RiskTier != "medium" {
		t.Errorf("RiskTier = %q, want medium", got.RiskTier)
	}
	if got.NeedsReview {
		t.Error("NeedsReview = true, want false")
	}
	if got.Name != "Empty" {
		t.Errorf("Name = %q, want Empty", got.Name)
	}
}

func TestExtractLeaseFields_Idempotent(t *testing.T) {
	text := "Lessee: Desert Energy LLC shall pay $24,000 per year in rent for 20 years on 120 acres in Converse County, Wyoming with a 1.5% escalator."
	first := ExtractLeaseFields(text, "lease.docx")
	second := ExtractLeaseFields(text, "lease.docx")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMissingCritical(t *testing.T) {
	rent := 5000
	term := 20
	tests := []struct {
		name   string
		fields LeaseFields
		want   []string
	}{
		{"both missing", LeaseFields{}, []string{"annual_rent", "term_years"}},
		{"rent missing", LeaseFields{TermYears: &term}, []string{"annual_rent"}},
		{"term missing", LeaseFields{AnnualRent: &rent}, []string{"term_years"}},
		{"none missing", LeaseFields{AnnualRent: &rent, TermYears: &term}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fields.MissingCritical(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingCritical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"smith_family_lease.pdf", "Smith Family Lease"},
		{"jones farm.docx", "Jones Farm"},
		{"plain", "Plain"},
		{"/data/leases/route_66_solar.json", "Route 66 Solar"},
		{"archive.tar", "Archive.tar"}, // unknown extension kept
	}
	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
