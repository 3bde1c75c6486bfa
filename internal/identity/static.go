package identity

import (
	"context"
	"errors"

	"github.com/reelkit/reels-ms-go/internal/port"
)

// StaticTokenSource hands out a fixed bearer token obtained out of band from
// the identity gateway. Refresh is the gateway's concern, not ours.
type StaticTokenSource struct {
	Token string
}

var _ port.TokenSource = (*StaticTokenSource)(nil)

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{Token: token}
}

func (s *StaticTokenSource) AccessToken(ctx context.Context) (string, error) {
	if s.Token == "" {
		return "", errors.New("identity: no session token available")
	}
	return s.Token, nil
}
