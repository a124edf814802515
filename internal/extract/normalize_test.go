package extract

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"newlines to spaces", "Annual\nRental\nPayment", "annual rental payment"},
		{"collapses runs", "rent   of \t  $500", "rent of $500"},
		{"lowercases", "SMITH COUNTY, Wyoming", "smith county, wyoming"},
		{"mixed", "The  Lease\n\nShall   Run\nFor 25 Years", "the lease shall run for 25 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "Some  Document\nWith Noise"
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %q vs %q", once, twice)
	}
}
