package tag

import (
	"errors"
	"io"
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

func (h *Handler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, tags)
}

type generateRequest struct {
	FileURL string `json:"fileUrl"`
}

// Generate accepts either a multipart "file" field or a JSON body with a
// fileUrl pointing at an already-stored syllabus.
func (h *Handler) Generate(c *gin.Context) {
	var (
		results   map[string]Result
		reasoning map[string]string
		err       error
	)

	if fileHeader, fErr := c.FormFile("file"); fErr == nil {
		f, oErr := fileHeader.Open()
		if oErr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
			return
		}
		defer f.Close()
		data, rErr := io.ReadAll(f)
		if rErr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
			return
		}
		results, reasoning, err = h.service.GenerateFromBytes(c.Request.Context(), data)
	} else {
		var req generateRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.FileURL == "" {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file or file URL provided")
			return
		}
		results, reasoning, err = h.service.GenerateFromURL(c.Request.Context(), req.FileURL)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrDownloadFailed):
			response.Error(c, http.StatusBadGateway, "NETWORK_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"tags":      results,
		"reasoning": reasoning,
	})
}
