package handlers

import (
	"errors"
	"net/http"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/pkg/response"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	svc *application.ProfileService
}

func NewUserHandler(svc *application.ProfileService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Create a citizen account
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} response.DataResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input profile.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.DataResponse{Data: p})
}

// Login godoc
// @Summary Authenticate and receive a JWT
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input profile.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)

	resp := response.TokenResponse{
		Token:   token,
		UserID:  p.ID.String(),
		Email:   p.Email,
		Role:    string(p.Role),
		IsAdmin: p.Role == profile.RoleAdmin,
	}
	if p.FullName != nil {
		resp.FullName = *p.FullName
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Clear the auth cookie
// @Tags users
// @Success 200 {object} response.MessageResponse
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// Me godoc
// @Summary Current user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.DataResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "profile not found"})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: p})
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.DataResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input profile.UpdateProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Update(userID, input)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: p})
}

// DeleteUser godoc
// @Summary Delete a user and every row that depends on them
// @Tags users
// @Security BearerAuth
// @Accept json
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var input profile.DeleteUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.DeleteAccount(userID, claims.UserID); err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "user deleted"})
}
