package profile

import (
	"go-stationops/internal/auth"
	"go-stationops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authenticator middleware.Authenticator,
	rbacService middleware.RBACService,
) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.Authenticate(authenticator))
	profiles.Use(middleware.RequireRole(rbacService, auth.RoleEmployee, auth.RoleCustomer))
	{
		profiles.GET("/me",
			middleware.RateLimitByPrincipal(5, 20),
			handler.GetMe,
		)
		profiles.PATCH("/me",
			middleware.RateLimitByPrincipal(1, 5),
			handler.UpdateMe,
		)
	}
}
