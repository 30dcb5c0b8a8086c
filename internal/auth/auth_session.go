package auth

import (
	"context"
	"strings"

	autherrors "go-stationops/internal/auth/errors"
)

type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// Session turns a bearer token into a principal. The token only proves who
// the subject was when it was issued; the principal is looked up again on
// every call.
type Session struct {
	tokens   TokenVerifier
	resolver *Resolver
}

func NewSession(tokens TokenVerifier, resolver *Resolver) *Session {
	return &Session{tokens: tokens, resolver: resolver}
}

func (s *Session) Authenticate(ctx context.Context, bearer string) (*Principal, error) {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return nil, autherrors.ErrMissingToken
	}

	subject, err := s.tokens.Verify(bearer)
	if err != nil {
		return nil, err
	}

	return s.resolver.ResolveByID(ctx, subject)
}
