package handlers

import (
	"net/http"

	"sustainshare-api/middleware"
	"sustainshare-api/models"
	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SignupRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	users  ports.UserService
	tokens *middleware.TokenIssuer
	logger *zap.Logger
}

func NewAuthHandler(users ports.UserService, tokens *middleware.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

// Signup creates a new user account
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), models.User{
		ID:       req.UserID,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.UserRole(req.Role),
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, h.logger, err, "User not found", "registering user")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully!",
		"userId":  user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "User not found", "logging in")
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		respondError(c, h.logger, err, "User not found", "generating token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   token,
		"userId":  user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    user.Role,
	})
}

// Logout is a no-op; tokens expire on their own.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully!"})
}

// Verify reports whether the bearer token is valid.
func (h *AuthHandler) Verify(c *gin.Context) {
	tokenStr, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Missing token"})
		return
	}
	claims, err := h.tokens.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "Token is valid",
		"userId":  claims.UserID,
		"role":    claims.Role,
	})
}

// Me returns the authenticated user's record
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, h.logger, err, "User not found", "loading profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
