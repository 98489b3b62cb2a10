package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"syllabushub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetRecommendations(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"invalid recommendation request", err.Error())
		return
	}

	recs, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingTitle) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL",
			"failed to generate recommendations", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recommendations": recs})
}

func (h *Handler) RelevantMajors(c *gin.Context) {
	jobTitle := c.Query("jobTitle")
	if jobTitle == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrMissingTitle.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"relevantMajors": h.service.RelevantMajors(jobTitle)})
}
