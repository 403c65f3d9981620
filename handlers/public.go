package handlers

import (
	"net/http"

	"sustainshare-api/models"
	"sustainshare-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Welcome lists the main entry points
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the SustainShare food donation API",
		"docs":    "/api/statuses",
		"health":  "/health",
		"roles":   []models.UserRole{models.RoleDonor, models.RoleCharity, models.RoleAdmin},
	})
}

// Statuses returns the known status vocabularies and the lifecycle tables
func Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"foodStatuses":      statemachine.FoodStatuses(),
		"pickupStatuses":    statemachine.PickupStatuses(),
		"claimableStatuses": statemachine.ClaimableStatuses(),
		"foodLifecycle":     statemachine.FoodLifecycle(),
		"pickupLifecycle":   statemachine.PickupLifecycle(),
		"description":       "Food donation and pickup status lifecycle",
	})
}
