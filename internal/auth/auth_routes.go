package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth. authenticate is the session middleware and
// loginLimit throttles credential guessing.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, authenticate, loginLimit gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.Login)
		auth.GET("/me", authenticate, h.Me)
	}
}
