package common

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("region", "mountain-west", Required)

	if !v.HasErrors() {
		t.Fatal("want error for empty name")
	}
	if len(v.Errors()) != 1 {
		t.Errorf("errors = %d, want 1", len(v.Errors()))
	}
	if !strings.Contains(v.ErrorMessage(), "name") {
		t.Errorf("message = %q", v.ErrorMessage())
	}
}

func TestValidatorUUID(t *testing.T) {
	good := uuid.New().String()
	v := NewValidator().
		Field("portfolio_id", good, UUID).
		Field("file_id", "not-a-uuid", UUID)

	if len(v.Errors()) != 1 {
		t.Fatalf("errors = %v", v.Errors())
	}
	if v.Errors()[0].Field != "file_id" {
		t.Errorf("failed field = %q", v.Errors()[0].Field)
	}
}

func TestValidatorRiskTier(t *testing.T) {
	for _, tier := range []string{"low", "medium", "high"} {
		if err := RiskTier("risk_tier", tier); err != nil {
			t.Errorf("RiskTier(%q) = %v", tier, err)
		}
	}
	if err := RiskTier("risk_tier", "severe"); err == nil {
		t.Error("want error for unknown tier")
	}
	if err := RiskTier("risk_tier", 3); err == nil {
		t.Error("want error for non-string value")
	}
}

func TestValidateAndReturnError(t *testing.T) {
	ok := NewValidator().Field("name", "Mesa Portfolio", Required)
	if err := ValidateAndReturnError(ok); err != nil {
		t.Errorf("err = %v, want nil", err)
	}

	bad := NewValidator().Field("name", "", Required)
	if err := ValidateAndReturnError(bad); err == nil {
		t.Error("want error")
	}
}
