package rbac

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the actor on whose behalf an option is written.
type Principal struct {
	ID   uuid.UUID
	Role string
}

type principalCtxKey struct{}

// WithPrincipal stores the acting principal in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromContext returns the acting principal stored in ctx.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}
