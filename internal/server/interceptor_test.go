package server

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/solargrid-io/lease-tracker/internal/common"
)

func TestRequestIDInterceptorGeneratesID(t *testing.T) {
	ic := RequestIDUnaryInterceptor(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/leases.v1.LeasesService/ListLeases"}

	var got string
	_, err := ic(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		got = common.RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if got == "" {
		t.Error("handler context has no request id")
	}
}

func TestRequestIDInterceptorKeepsCallerID(t *testing.T) {
	ic := RequestIDUnaryInterceptor(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/leases.v1.LeasesService/ListLeases"}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(requestIDHeader, "req-123"))

	var got string
	_, err := ic(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		got = common.RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}
