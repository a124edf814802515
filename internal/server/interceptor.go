package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/solargrid-io/lease-tracker/internal/common"
)

const requestIDHeader = "x-request-id"

// RequestIDUnaryInterceptor tags every RPC with a request ID, taken from
// x-request-id metadata when the caller supplies one, generated otherwise.
// The ID is placed on the context for downstream code and logged with the
// RPC outcome.
func RequestIDUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(requestIDHeader); len(vals) > 0 {
				rid = vals[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc.failed", "method", info.FullMethod, "request_id", rid,
				"duration_ms", time.Since(start).Milliseconds(), "error", err)
			return resp, err
		}
		logger.Info("rpc.ok", "method", info.FullMethod, "request_id", rid,
			"duration_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}
