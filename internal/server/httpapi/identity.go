package httpapi

import (
	"context"

	"github.com/dmitrijs2005/filehost/internal/logging"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   int64
	Username string
}

type identityContextKey struct{}

type loggerContextKey struct{}

// WithIdentity stores the caller identity in ctx.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext returns the identity set by RequireAuth, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityContextKey{}).(*Identity)
	return id
}

func withLogger(ctx context.Context, l logging.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

func loggerFromContext(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(logging.Logger); ok {
		return l
	}
	return logging.Nop()
}
