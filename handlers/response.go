package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to a status code and a {"message"} body.
// Unexpected errors are logged and reported generically so internal details
// do not reach the client.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFound, action string) {
	switch {
	case errors.Is(err, ports.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), ports.ErrValidation.Error()+": ")
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
	case errors.Is(err, ports.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
	case errors.Is(err, ports.ErrEmailExists),
		errors.Is(err, ports.ErrUsernameExists),
		errors.Is(err, ports.ErrUserIDExists),
		errors.Is(err, ports.ErrNotClaimable):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, ports.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, ports.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err)
		logger.Error(action,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error " + action})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// bindOptionalJSON binds the body into dst, treating an empty body as an
// empty object so the service reports the missing field. It writes a 400
// for malformed JSON.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return false
	}
	return true
}

// uintParam parses a numeric path parameter, writing a 400 on failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		badRequest(c, "Invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		badRequest(c, "Invalid "+name+": "+raw)
		return 0, false
	}
	return n, true
}
