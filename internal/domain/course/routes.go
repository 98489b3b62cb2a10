package course

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public, read-only catalog endpoints.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	courses := r.Group("/courses")
	{
		courses.GET("/subjects", h.Subjects)
		courses.GET("/numbers", h.Numbers)
		courses.GET("/details/:subject/:number", h.Details)
		courses.GET("/valid", h.List)
		courses.GET("/professors", h.Professors)
	}
}
