package handlers

import (
	"net/http"

	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoleRequest struct {
	Role string `json:"role"`
}

type UserHandler struct {
	users  ports.UserService
	logger *zap.Logger
}

func NewUserHandler(users ports.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

const userNotFound = "User not found"

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "fetching user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListByRole(c *gin.Context) {
	users, err := h.users.ListByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "fetching users by role")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	var changes ports.UserChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		badRequest(c, err.Error())
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "updating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req RoleRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	user, err := h.users.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "updating user role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully", "user": user})
}

func (h *UserHandler) Activate(c *gin.Context) {
	user, err := h.users.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "activating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User activated successfully", "user": user})
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	user, err := h.users.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "deactivating user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully", "user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, userNotFound, "deleting user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, userNotFound, "computing user stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
