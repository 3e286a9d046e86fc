package handler

import (
	"net/http"

	domainerr "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/usecase/session"
	"pocket-wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	sessions *session.Store
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(sessions *session.Store, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{User: user})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.sessions.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeDomainError(c, h.logger, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{User: user})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		writeDomainError(c, h.logger, "logout", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := h.sessions.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeNotAuthenticated,
			Message: domainerr.ErrNotAuthenticated.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: user})
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.sessions.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		writeDomainError(c, h.logger, "forgot-password", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "reset email sent"})
}

// NewPassword handles POST /auth/new-password
func (h *AuthHandler) NewPassword(c *gin.Context) {
	var req dto.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.sessions.ChangePassword(c.Request.Context(), req.Password, req.ConfirmPassword); err != nil {
		writeDomainError(c, h.logger, "new-password", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password changed"})
}
