package canvas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syllabushub/internal/domain/upload"
	"syllabushub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Courses(c *gin.Context) {
	grouped, err := h.service.Courses(c.Request.Context())
	if err != nil {
		writeCanvasError(c, err)
		return
	}
	response.Success(c, http.StatusOK, grouped)
}

func (h *Handler) Syllabus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("courseId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid course id")
		return
	}
	syllabus, err := h.service.Syllabus(c.Request.Context(), id)
	if err != nil {
		writeCanvasError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"syllabus": syllabus})
}

func (h *Handler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	res, err := h.service.Import(c.Request.Context(), req)
	if err != nil {
		writeCanvasError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func writeCanvasError(c *gin.Context, err error) {
	var storeErr *upload.StoreError
	var recErr *upload.RecordError
	switch {
	case errors.Is(err, ErrAlreadyUploaded):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNoSyllabus):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrUnknownCourse):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrUnreachable):
		response.Error(c, http.StatusBadGateway, "NETWORK_ERROR", err.Error())
	case errors.As(err, &storeErr):
		response.Error(c, http.StatusBadGateway, "STORE_ERROR", err.Error())
	case errors.As(err, &recErr):
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
