package middleware

import (
	"go-stationops/internal/auth"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/rbac"
	"go-stationops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RequireRole lets the request through when the attached principal passes
// the gate of any of the given roles.
func RequireRole(service RBACService, roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.Abort(c, autherrors.ErrPrincipalNotFound)
			return
		}

		for _, required := range roles {
			allowed, err := service.Enforce(rbac.EnforceRequest{
				Role:     string(p.Role),
				Required: string(required),
			})
			if err != nil {
				zap.L().Error("role gate failed", zap.Error(err))
				response.Abort(c, err)
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		response.Abort(c, autherrors.ErrForbidden)
	}
}
