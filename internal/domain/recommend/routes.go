package recommend

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rec := r.Group("/rec")
	{
		rec.POST("/getrec", h.GetRecommendations)
		rec.GET("/relevant-majors", h.RelevantMajors)
	}
}
