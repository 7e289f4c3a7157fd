package api

import (
	"clubfund/config"
	"clubfund/middleware"
	"clubfund/models"
	"clubfund/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	cfg      *config.Config
	identity *service.IdentityService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(cfg *config.Config, identity *service.IdentityService) *AuthHandler {
	return &AuthHandler{cfg: cfg, identity: identity}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20" example:"member1"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"member1"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserInfo is the client-visible view of a user, without the hash.
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginResponse carries the token issued at login.
type LoginResponse struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"user_info"`
}

func userInfo(u models.User) UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

// Register creates a member account
// @Summary Register a new member
// @Description Creates a non-admin account. Fails when the username is already taken.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 200 {object} Response "registration successful"
// @Failure 400 {object} Response "invalid payload or username taken"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	created, err := h.identity.Register(req.Username, req.Password)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "registration failed"))
		return
	}
	if !created {
		BadRequest(c, "username already exists")
		return
	}

	SuccessWithMessage(c, "registration successful, you can now log in", nil)
}

// Login authenticates a user
// @Summary Log in
// @Description Verifies the credentials and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} Response{data=LoginResponse} "login successful"
// @Failure 401 {object} Response "invalid username or password"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request"))
		return
	}

	user, found, err := h.identity.FindByUsername(req.Username)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "login failed"))
		return
	}
	if !found || !h.identity.VerifyPassword(user, req.Password) {
		Unauthorized(c, "invalid username or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.IsAdmin, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "token generation failed"))
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: userInfo(user)})
}

// Logout acknowledges a logout
// @Summary Log out
// @Description Tokens are stateless; the client discards its copy.
// @Tags auth
// @Produce json
// @Success 200 {object} Response "logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	SuccessWithMessage(c, "you have been logged out", nil)
}

// GetProfile returns the authenticated user
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=UserInfo} "profile"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "user no longer exists"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, found, err := h.identity.FindByID(middleware.GetCurrentUserID(c))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "lookup failed"))
		return
	}
	if !found {
		NotFound(c, "user not found")
		return
	}
	Success(c, userInfo(user))
}
