package api_context

import "context"

type ctxKey string

const (
	AuthUserIDKey ctxKey = "authUserID"
)

// AuthUserIDFromContext returns the subject of the bearer token attached to
// the request, if any. An absent value means the request runs in service-role
// mode.
func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

// WithAuthUserID stashes the bearer token subject in the context.
func WithAuthUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, AuthUserIDKey, id)
}
