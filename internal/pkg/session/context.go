package session

import "context"

type contextKey struct{}

// NewContext attaches the session to a request context so the upstream
// client can forward the caller's credential.
func NewContext(ctx context.Context, sess *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session attached to the context, if any.
func FromContext(ctx context.Context) (*Context, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Context)
	return sess, ok
}
