package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the read-only surface.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	uploads := r.Group("/uploads")
	{
		uploads.GET("", h.Search)
		uploads.GET("/:id", h.Get)
		uploads.POST("/check", h.Check)
	}
}

// RegisterProtectedRoutes mounts the mutating surface behind auth.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("", h.Create)
		uploads.PUT("/:id", h.Edit)
		uploads.DELETE("/:id", h.Delete)
	}
}
