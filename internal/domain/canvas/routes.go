package canvas

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the LMS browsing and import surface. The import
// endpoint keeps its historical path under /upload.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	cv := r.Group("/canvas")
	{
		cv.GET("/courses", h.Courses)
		cv.GET("/syllabus/:courseId", h.Syllabus)
	}
	r.POST("/upload/syllabus/import", h.Import)
}
