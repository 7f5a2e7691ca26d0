package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/config"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/pkg/response"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	svc    *application.RequestService
	triage *application.TriageService
}

func NewRequestHandler(svc *application.RequestService, triage *application.TriageService) *RequestHandler {
	return &RequestHandler{svc: svc, triage: triage}
}

// parseDateParam accepts RFC3339 timestamps or plain dates.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRequests godoc
// @Summary List requests with filters and enrichment
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param request_type query string false "Type filter"
// @Param assigned_clerk_id query string false "Assigned clerk filter"
// @Param from_date query string false "Created from"
// @Param to_date query string false "Created to"
// @Param search query string false "Partial match on request_type"
// @Success 200 {object} response.DataResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /requests [get]
func (h *RequestHandler) GetRequests(c *gin.Context) {
	filter := request.ListFilter{
		Status:      c.Query("status"),
		RequestType: c.Query("request_type"),
		Search:      c.Query("search"),
	}

	if raw := c.Query("assigned_clerk_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid assigned_clerk_id"})
			return
		}
		filter.AssignedClerkID = &id
	}

	from, err := parseDateParam(c.Query("from_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid from_date"})
		return
	}
	filter.FromDate = from

	to, err := parseDateParam(c.Query("to_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid to_date"})
		return
	}
	filter.ToDate = to

	data, err := h.svc.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: data})
}

// GetMyRequests godoc
// @Summary List the current citizen's requests
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.DataResponse
// @Router /requests/my [get]
func (h *RequestHandler) GetMyRequests(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	data, err := h.svc.ListMine(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: data})
}

// GetRequestByID godoc
// @Summary Get one request
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	isStaff := claims.Role == "clerk" || claims.Role == "admin"

	data, err := h.svc.Get(id, claims.UserID, isStaff)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: data})
}

// CreateRequest godoc
// @Summary Open a new request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input request.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.Create(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Data: req})
}

// CancelRequest godoc
// @Summary Cancel (delete) the citizen's own request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /requests/{id} [delete]
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.Cancel(id, userID); err != nil {
		switch {
		case errors.Is(err, application.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
		case errors.Is(err, application.ErrNotRequestOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "request cancelled"})
}

// GetStatistics godoc
// @Summary Request statistics over a timeframe
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param timeframe query string false "7d|30d|90d|1y" default(30d)
// @Success 200 {object} response.DataResponse
// @Router /requests/statistics [get]
func (h *RequestHandler) GetStatistics(c *gin.Context) {
	timeframe := c.DefaultQuery("timeframe", "30d")

	stats, err := h.svc.Statistics(timeframe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: stats})
}

// GetUrgent godoc
// @Summary Open requests near or past their legal deadline
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param days query int false "Deadline window in days" default(3)
// @Success 200 {object} response.DataResponse
// @Router /requests/urgent [get]
func (h *RequestHandler) GetUrgent(c *gin.Context) {
	days := config.UrgentDaysDefault
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	data, err := h.triage.Urgent(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: data})
}

// GetClerkStats godoc
// @Summary Clerk dashboard counters
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.DataResponse
// @Router /requests/clerk-stats [get]
func (h *RequestHandler) GetClerkStats(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.triage.ClerkStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: stats})
}

// AutoAssign godoc
// @Summary Distribute unassigned pending requests across clerks
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.AutoAssignResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /requests/auto-assign [post]
func (h *RequestHandler) AutoAssign(c *gin.Context) {
	count, err := h.triage.AutoAssignPending()
	if err != nil {
		if errors.Is(err, application.ErrNoEligibleClerks) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "success": false})
		return
	}

	message := fmt.Sprintf("%d requests were automatically assigned", count)
	if count == 0 {
		message = "no unassigned requests"
	}
	c.JSON(http.StatusOK, response.AutoAssignResponse{
		Success:       true,
		AssignedCount: count,
		Message:       message,
	})
}

// Claim godoc
// @Summary Claim a pending request for review
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /requests/{id}/claim [post]
func (h *RequestHandler) Claim(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.triage.Claim(id, userID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
		case errors.Is(err, application.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: req})
}

// Unassign godoc
// @Summary Release an in-review request back to the queue
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Router /requests/{id}/unassign [post]
func (h *RequestHandler) Unassign(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.triage.Unassign(id)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: req})
}

// Approve godoc
// @Summary Approve an in-review request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Router /requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input request.ApproveDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.triage.Approve(id, claims.UserID, claims.IsAdmin, input.Notes)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: req})
}

// Reject godoc
// @Summary Reject an in-review request with a mandatory reason
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input request.RejectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "rejection reason is required"})
		return
	}

	req, err := h.triage.Reject(id, claims.UserID, claims.IsAdmin, input.Reason)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: req})
}

// SetPriority godoc
// @Summary Update a request's priority (0-10)
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Success 200 {object} response.DataResponse
// @Router /requests/{id}/priority [put]
func (h *RequestHandler) SetPriority(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	var input request.PriorityDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.triage.SetPriority(id, input.Priority)
	if err != nil {
		h.decisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: req})
}

func (h *RequestHandler) decisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
	case errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrReasonRequired),
		errors.Is(err, application.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotAssignedClerk):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
