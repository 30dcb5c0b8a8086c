package middleware

import (
	"context"
	"strings"

	"go-stationops/internal/auth"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/shared/contextutil"
	"go-stationops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextPrincipal   = "principal"
	ContextPrincipalID = "principal_id"
	ContextRole        = "role"
)

type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (*auth.Principal, error)
}

// Authenticate resolves the bearer token on every request and attaches the
// principal to both the gin and the standard context.
func Authenticate(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			response.Abort(c, autherrors.ErrMissingToken)
			return
		}

		ctx := c.Request.Context()
		p, err := authenticator.Authenticate(ctx, tokenString)
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Info("authentication rejected", zap.Error(err))
			response.Abort(c, err)
			return
		}

		c.Set(ContextPrincipal, p)
		c.Set(ContextPrincipalID, p.ID)
		c.Set(ContextRole, string(p.Role))

		ctx = auth.WithPrincipal(ctx, p)
		ctx = contextutil.WithPrincipalID(ctx, p.ID)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("principal_id", p.ID),
			zap.String("role", string(p.Role)),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (*auth.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok && p != nil
}
