package server

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLeaseFilter(t *testing.T) {
	t.Run("empty input is no filter", func(t *testing.T) {
		f, err := leaseFilter("", false)
		if err != nil {
			t.Fatalf("leaseFilter: %v", err)
		}
		if f.RiskTier != "" || f.NeedsReview != nil {
			t.Errorf("filter = %+v, want zero value", f)
		}
	})

	t.Run("tier is normalized", func(t *testing.T) {
		f, err := leaseFilter("  HIGH ", false)
		if err != nil {
			t.Fatalf("leaseFilter: %v", err)
		}
		if f.RiskTier != "high" {
			t.Errorf("RiskTier = %q", f.RiskTier)
		}
	})

	t.Run("unknown tier rejected", func(t *testing.T) {
		_, err := leaseFilter("extreme", false)
		if err == nil {
			t.Fatal("want error for unknown tier")
		}
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("code = %v, want InvalidArgument", status.Code(err))
		}
	})

	t.Run("needs review only", func(t *testing.T) {
		f, err := leaseFilter("", true)
		if err != nil {
			t.Fatalf("leaseFilter: %v", err)
		}
		if f.NeedsReview == nil || !*f.NeedsReview {
			t.Errorf("NeedsReview = %v", f.NeedsReview)
		}
	})
}
