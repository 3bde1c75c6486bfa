package port

import "context"

// TokenSource yields the current bearer token of the authenticated user from
// the identity gateway. Implementations decide how tokens are obtained and
// refreshed; this service only forwards them.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
