package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyPortfolioID contextKey = "portfolio_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithPortfolioID adds a portfolio ID to the context
func WithPortfolioID(ctx context.Context, portfolioID string) context.Context {
	return context.WithValue(ctx, ContextKeyPortfolioID, portfolioID)
}

// PortfolioIDFromContext extracts the portfolio ID from context
func PortfolioIDFromContext(ctx context.Context) string {
	if portfolioID, ok := ctx.Value(ContextKeyPortfolioID).(string); ok {
		return portfolioID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
