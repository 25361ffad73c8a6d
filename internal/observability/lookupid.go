package observability

import (
	"context"

	"github.com/google/uuid"
)

// lookupIDContextKey is a custom type to avoid context key collisions
type lookupIDContextKey string

const lookupIDKey lookupIDContextKey = "lookup_id"

// WithLookupID returns a context carrying a fresh lookup ID, unless one is
// already present.
func WithLookupID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if GetLookupID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, lookupIDKey, uuid.New().String())
}

// GetLookupID retrieves the lookup ID from context
func GetLookupID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if lookupID, ok := ctx.Value(lookupIDKey).(string); ok {
		return lookupID
	}
	return ""
}
