package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/aduportal/portal-go/pkg/response"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	svc *application.DocumentService
}

func NewDocumentHandler(svc *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Upload godoc
// @Summary Attach a file to a request
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Request ID"
// @Param file formData file true "Document file"
// @Success 201 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /requests/{id}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	requestID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.svc.Upload(c.Request.Context(), requestID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, application.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Data: doc})
}

// ListByRequest godoc
// @Summary List a request's documents
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Router /requests/{id}/documents [get]
func (h *DocumentHandler) ListByRequest(c *gin.Context) {
	requestID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	docs, err := h.svc.ListByRequest(requestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: docs})
}

// Approve godoc
// @Summary Manually approve a document
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Param id path string true "Document ID"
// @Success 200 {object} response.DataResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id}/approve [post]
func (h *DocumentHandler) Approve(c *gin.Context) {
	docID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.svc.Approve(docID, claims.UserID)
	if err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: doc})
}

// Reject godoc
// @Summary Manually reject a document with a reason
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Param id path string true "Document ID"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /documents/{id}/reject [post]
func (h *DocumentHandler) Reject(c *gin.Context) {
	docID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input document.RejectDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "rejection reason is required"})
		return
	}

	doc, err := h.svc.Reject(docID, claims.UserID, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "document not found"})
		case errors.Is(err, application.ErrReasonRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: doc})
}

// ListRejected godoc
// @Summary Latest rejected documents with their request and requester
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max rows" default(50)
// @Success 200 {object} response.DataResponse
// @Router /documents/rejected [get]
func (h *DocumentHandler) ListRejected(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	docs, err := h.svc.RejectedDocuments(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: docs})
}
