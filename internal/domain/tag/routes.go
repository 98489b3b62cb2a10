package tag

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	tags := r.Group("/tags")
	{
		tags.GET("", h.List)
		tags.POST("/generate-tags", h.Generate)
	}
}
