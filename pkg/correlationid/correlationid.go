// Package correlationid carries a per-request correlation ID through context
// so logs for one request can be stitched together.
package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header the correlation ID travels in.
const Header = "X-Correlation-ID"

type contextKey struct{}

// New generates a fresh correlation ID.
func New() string {
	return uuid.NewString()
}

// NewContext returns a context carrying the given correlation ID.
func NewContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// FromContext extracts the correlation ID from the context, if present.
func FromContext(ctx context.Context) (string, bool) {
	correlationID, ok := ctx.Value(contextKey{}).(string)
	return correlationID, ok
}
