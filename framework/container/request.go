package container

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// WithContainer stores c in ctx.
func WithContainer(ctx context.Context, c *Container) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the container stored in ctx, if any.
func FromContext(ctx context.Context) (*Container, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Container)
	return c, ok
}

// MustFromContext returns the container stored in ctx or panics. Handlers
// mounted behind RequestScope can rely on it being present.
func MustFromContext(ctx context.Context) *Container {
	c, ok := FromContext(ctx)
	if !ok {
		panic("container: no container in request context; is the RequestScope middleware mounted?")
	}
	return c
}

// RequestScope returns middleware that opens a child container per request
// and stores it in the request context. Anything a handler registers on the
// child shadows the root for that request only and is dropped when the
// request ends; root singletons remain shared.
func RequestScope(root *Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			scope := root.CreateChild()
			next.ServeHTTP(w, req.WithContext(WithContainer(req.Context(), scope)))
		})
	}
}
