package auth

import (
	"context"

	"go-stationops/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
}

type service struct {
	resolver *Resolver
	tokens   *TokenManager
	logger   *zap.Logger
}

func NewService(resolver *Resolver, tokens *TokenManager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{resolver: resolver, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	p, err := s.resolver.Resolve(ctx, email, password)
	if err != nil {
		return LoginResponse{}, err
	}

	token, expiresAt, err := s.tokens.Issue(p)
	if err != nil {
		s.logger.Error("issue token failed", zap.String("principal_id", p.ID), zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("principal_id", p.ID),
		zap.String("role", string(p.Role)),
		zap.String("store", string(p.Origin)),
	)

	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Principal:   ToPrincipalResponse(p),
	}, nil
}
