package upload

import (
	"errors"
	"io"
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrNoFile.Error())
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), CreateInput{
		CourseID:    req.CourseID,
		Semester:    req.Semester,
		Year:        req.Year,
		Filename:    fileHeader.Filename,
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload id")
		return
	}
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.service.Edit(c.Request.Context(), c.GetInt64("user_id"), id, req); err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid upload id")
		return
	}
	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Search(c *gin.Context) {
	f := SearchFilter{
		ProfessorName: c.Query("professor"),
		Subject:       c.Query("subject"),
		Semester:      c.Query("semester"),
		CourseName:    c.Query("course_name"),
		Description:   c.Query("description"),
	}
	if v := c.Query("number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid course number")
			return
		}
		f.Number = n
	}
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid year")
			return
		}
		f.Year = n
	}
	if v := c.Query("tag_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid tag id")
			return
		}
		f.TagID = n
	}

	uploads, err := h.service.Search(c.Request.Context(), f)
	if err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, uploads)
}

func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	res, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		writeUploadError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func writeUploadError(c *gin.Context, err error) {
	var storeErr *StoreError
	var recErr *RecordError
	switch {
	case errors.Is(err, ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrInvalidSemester), errors.Is(err, ErrInvalidYear):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.As(err, &storeErr):
		response.Error(c, http.StatusBadGateway, "STORE_ERROR", err.Error())
	case errors.As(err, &recErr):
		response.Error(c, http.StatusInternalServerError, "RECORD_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
