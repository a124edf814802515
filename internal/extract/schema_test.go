package extract

import (
	"strings"
	"testing"
)

func TestDecodeStructured(t *testing.T) {
	raw := []byte(`{
		"name": "Jones Farm",
		"annual_rent": 42000,
		"term_years": 25,
		"escalator": 0.02,
		"risk_tier": "low",
		"location": "Teton County, Wyoming",
		"acres": 320.0,
		"developer": "High Plains Solar LLC",
		"landowners": "Jones Family Trust",
		"needs_review": false
	}`)

	f, err := DecodeStructured(raw)
	if err != nil {
		t.Fatalf("DecodeStructured() error = %v", err)
	}
	if f.Name != "Jones Farm" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.AnnualRent == nil || *f.AnnualRent != 42000 {
		t.Errorf("AnnualRent = %v", f.AnnualRent)
	}
	if f.RiskTier != "low" {
		t.Errorf("RiskTier = %q", f.RiskTier)
	}
	if f.Landowners == nil || *f.Landowners != "Jones Family Trust" {
		t.Errorf("Landowners = %v", f.Landowners)
	}
}

func TestDecodeStructured_DefaultsApplied(t *testing.T) {
	f, err := DecodeStructured([]byte(`{"name": "Minimal"}`))
	if err != nil {
		t.Fatalf("DecodeStructured() error = %v", err)
	}
	if f.RiskTier != "medium" {
		t.Errorf("RiskTier = %q, want medium default", f.RiskTier)
	}
	if f.AnnualRent != nil || f.TermYears != nil {
		t.Errorf("optionals should stay nil, got %+v", f)
	}
}

func TestDecodeStructured_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"not json", `{`, "decode structured lease"},
		{"missing name", `{"annual_rent": 5000}`, "schema validation"},
		{"bad risk tier", `{"name": "X", "risk_tier": "extreme"}`, "schema validation"},
		{"negative acres", `{"name": "X", "acres": -4}`, "schema validation"},
		{"wrong type", `{"name": "X", "annual_rent": "lots"}`, "schema validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeStructured([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
