package course

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syllabushub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Subjects(c *gin.Context) {
	subjects, err := h.service.Subjects(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, subjects)
}

func (h *Handler) Numbers(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "subject is required")
		return
	}
	numbers, err := h.service.NumbersBySubject(c.Request.Context(), subject)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, numbers)
}

func (h *Handler) Details(c *gin.Context) {
	subject := c.Param("subject")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid course number")
		return
	}

	course, err := h.service.Details(c.Request.Context(), subject, number)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "course not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, course)
}

func (h *Handler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context(), c.Query("subject"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, courses)
}

func (h *Handler) Professors(c *gin.Context) {
	names, err := h.service.ProfessorNames(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, names)
}
