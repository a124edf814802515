package utils

import "testing"

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("low", "medium", "high")

	for _, ok := range []string{"low", "medium", "high"} {
		if err := validate(ok); err != nil {
			t.Errorf("validate(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "LOW", "severe"} {
		if err := validate(bad); err == nil {
			t.Errorf("validate(%q) = nil, want error", bad)
		}
	}
}
