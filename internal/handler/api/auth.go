package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "pousada-api/internal/handler/dto/request"
	resdto "pousada-api/internal/handler/dto/response"
	"pousada-api/internal/handler/httperr"
	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
)

type AuthService interface {
	Register(ctx context.Context, email, rawPassword string) (string, error)
	Login(ctx context.Context, email, rawPassword string) (string, error)
	ChangePassword(ctx context.Context, principal security.Principal, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, principal security.Principal, input usecase.ProfileUpdateInput) (*readmodel.UserView, error)
	RemoveProfile(ctx context.Context, principal security.Principal) error
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// @Summary Register a new user
// @Description Create an account with email and password. The very first account becomes an admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TokenResponse{Token: token})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TokenResponse{Token: token})
}

// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.UserView
// @Failure 401 {object} httperr.Response
// @Router /user/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	view, ok := middleware.GetCurrentUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrCurrentUserMissing, "User not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change password
// @Description Replace the authenticated user's password after checking the old one
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /user/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), p, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update profile
// @Description Update the authenticated user's own profile fields
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.UserView
// @Failure 400 {object} httperr.Response
// @Router /user/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	view, err := h.auth.UpdateProfile(c.Request.Context(), p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete own account
// @Description Remove the authenticated user's account
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /user/profile [delete]
func (h *AuthHandler) RemoveProfile(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.auth.RemoveProfile(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
