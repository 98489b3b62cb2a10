package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts public auth endpoints.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	grp := r.Group("/auth")
	{
		grp.POST("/register", h.Register)
		grp.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes mounts endpoints requiring a valid token.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	grp := r.Group("/auth")
	{
		grp.POST("/logout", h.Logout)
		grp.GET("/me", h.Me)
	}
}
