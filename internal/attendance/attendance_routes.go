package attendance

import (
	"time"

	"go-stationops/internal/auth"
	"go-stationops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authenticator middleware.Authenticator,
	rbacService middleware.RBACService,
	rdb redis.Cmdable,
) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.Authenticate(authenticator))
	attendances.Use(middleware.RequireRole(rbacService, auth.RoleEmployee))
	{
		attendances.GET("",
			middleware.RateLimitByPrincipal(3, 10),
			h.ListMonth,
		)

		report := []gin.HandlerFunc{middleware.RateLimitByPrincipal(0.5, 3)}
		if rdb != nil {
			report = append(report, middleware.Idempotency(rdb, idempotencyTTL))
		}
		attendances.POST("", append(report, h.Report)...)
	}
}
