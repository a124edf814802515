package common

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError("DB_ERROR", "opening pool", cause)

	if !strings.Contains(err.Error(), "DB_ERROR") || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap chain lost the cause")
	}

	bare := NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	if strings.Contains(bare.Error(), "<nil>") {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("wrapping nil should stay nil")
	}
	inner := errors.New("boom")
	wrapped := WrapError(inner, "ingest")
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error lost inner")
	}
}

func TestGRPCHelpers(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{InvalidArgumentError("bad"), codes.InvalidArgument},
		{NotFoundError("missing"), codes.NotFound},
		{InternalError("broken"), codes.Internal},
		{InvalidArgumentErrorf("bad %s", "field"), codes.InvalidArgument},
	}
	for _, tt := range tests {
		st, ok := status.FromError(tt.err)
		if !ok || st.Code() != tt.code {
			t.Errorf("status for %v = %v, want %v", tt.err, st.Code(), tt.code)
		}
	}
}

func TestContextValues(t *testing.T) {
	ctx := WithRequestID(t.Context(), "req-123")
	ctx = WithPortfolioID(ctx, "pf-456")

	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("request id = %q", got)
	}
	if got := PortfolioIDFromContext(ctx); got != "pf-456" {
		t.Errorf("portfolio id = %q", got)
	}
	if got := RequestIDFromContext(t.Context()); got != "" {
		t.Errorf("empty context request id = %q", got)
	}
}
