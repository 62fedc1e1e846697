package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"herbtrack/internal/logging"
	"herbtrack/internal/server/auth"
	"herbtrack/internal/server/models"
	"herbtrack/internal/server/services"
	"herbtrack/internal/shared"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users    *services.UserService
	logger   logging.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthHandler constructs an AuthHandler issuing tokens signed with secret.
func NewAuthHandler(users *services.UserService, logger logging.Logger, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, logger: logger, secret: secret, tokenTTL: tokenTTL}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrorUsernameAlreadyExists) || errors.Is(err, shared.ErrorEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "uid", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrorInvalidLoginPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error(c.Request.Context(), "token generation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	h.logger.Info(c.Request.Context(), "user logged in", "uid", user.ID)
	c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: toUserResponse(user)})
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{ID: user.ID, Username: user.Username, Email: user.Email}
}
