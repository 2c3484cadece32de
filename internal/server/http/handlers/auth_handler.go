package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// AuthHandler processes registration, login, logout and account lookup.
type AuthHandler struct {
	facade     AuthFacade
	sessionTTL time.Duration
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{facade: facade, sessionTTL: sessionTTL}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields are required"})
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case domainErrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "All fields are required"})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username or email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		}
		return
	}

	middleware.SetAuthCookie(c, token, h.sessionTTL)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Registration successful"})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username and password are required"})
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case domainErrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username and password are required"})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		}
		return
	}

	middleware.SetAuthCookie(c, token, h.sessionTTL)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Login successful"})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)

	if err := h.facade.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Could not log out"})
		return
	}

	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Logged out successfully"})
}

// Me handles GET /api/user.
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.ExtractToken(c)

	account, err := h.facade.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	})
}
