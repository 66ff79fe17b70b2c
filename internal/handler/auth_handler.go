package handler

import (
	"net/http"
	"time"

	"go-railway-admin/internal/audit"
	"go-railway-admin/internal/service"
	"go-railway-admin/internal/session"
	apperrors "go-railway-admin/pkg/app_errors"
	"go-railway-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionTTL bounds how long an API login stays valid without re-auth.
const SessionTTL = 24 * time.Hour

type AuthHandler struct {
	users service.UserService
	store session.Store
	trail *audit.Trail
}

func NewAuthHandler(users service.UserService, store session.Store, trail *audit.Trail) *AuthHandler {
	return &AuthHandler{users: users, store: store, trail: trail}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
	}
	authed := r.Group("/api/v1/auth", session.Middleware(h.store))
	{
		authed.POST("logout", h.Logout)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.users.RegisterCustomer(c, req.Username, req.Password, req.FullName, req.Email)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}

	h.trail.Log("REGISTER_CUSTOMER")
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, ok := h.users.Authenticate(c, req.Username, req.Password)
	if !ok {
		// Reported as a plain rejection; there is no lockout or rate limit.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.store.Create(c, session.Session{Username: user.Username, Role: user.Role})
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	h.trail.Log("LOGIN")
	c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(session.TokenHeader)
	if err := h.store.Delete(c, token); err != nil {
		h.handleError(c, err, "Logout")
		return
	}

	h.trail.Log("LOGOUT")
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch err {
	case apperrors.ErrUsernameTaken:
		log.Warn("Username taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
	case apperrors.ErrInvalidPassword:
		log.Warn("Invalid password")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must contain at least 4 letters, 3 digits and 1 symbol, max 20 characters"})
	case apperrors.ErrInvalidEmail:
		log.Warn("Invalid email")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
