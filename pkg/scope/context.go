package scope

import (
	"context"

	"scanner-srv/internal/model"
)

type contextKey struct{}

// SetScopeToContext attaches a scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// GetScopeFromContext returns the scope attached to the context, or the
// zero scope when none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(contextKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
