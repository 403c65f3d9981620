package handlers

import (
	"net/http"
	"strings"

	"sustainshare-api/models"
	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PickupRequest is the body of POST and PUT /api/pickups. charityId is only
// required on create.
type PickupRequest struct {
	FoodItemID         uint          `json:"foodItemId"`
	CharityID          string        `json:"charityId"`
	ScheduledTime      *FlexibleTime `json:"scheduledTime"`
	Status             string        `json:"status"`
	Notes              string        `json:"notes"`
	CancellationReason string        `json:"cancellationReason"`
	CreatedAt          *FlexibleTime `json:"createdAt"`
}

func (r PickupRequest) toModel() models.PickupSchedule {
	pickup := models.PickupSchedule{
		FoodItemID:         r.FoodItemID,
		CharityID:          strings.TrimSpace(r.CharityID),
		ScheduledTime:      r.ScheduledTime.Ptr(),
		Status:             r.Status,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
	}
	if created := r.CreatedAt.Ptr(); created != nil {
		pickup.CreatedAt = *created
	}
	return pickup
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type PickupHandler struct {
	pickups ports.PickupService
	logger  *zap.Logger
}

func NewPickupHandler(pickups ports.PickupService, logger *zap.Logger) *PickupHandler {
	return &PickupHandler{pickups: pickups, logger: logger}
}

const pickupNotFound = "Pickup not found"

// Schedule books a pickup for a charity
func (h *PickupHandler) Schedule(c *gin.Context) {
	var req PickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.CharityID) == "" {
		badRequest(c, "Charity ID is required")
		return
	}

	pickup, err := h.pickups.Schedule(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "scheduling pickup")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pickup scheduled successfully", "pickup": pickup})
}

func (h *PickupHandler) List(c *gin.Context) {
	pickups, err := h.pickups.List(c.Request.Context())
	h.respondList(c, pickups, err, "fetching pickups")
}

func (h *PickupHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	pickup, err := h.pickups.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "fetching pickup")
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *PickupHandler) ListByCharity(c *gin.Context) {
	pickups, err := h.pickups.ListByCharity(c.Request.Context(), c.Param("charityId"))
	h.respondList(c, pickups, err, "fetching charity pickups")
}

func (h *PickupHandler) ListByStatus(c *gin.Context) {
	pickups, err := h.pickups.ListByStatus(c.Request.Context(), c.Param("status"))
	h.respondList(c, pickups, err, "fetching pickups by status")
}

func (h *PickupHandler) ListByFoodItem(c *gin.Context) {
	foodID, ok := uintParam(c, "foodId")
	if !ok {
		return
	}
	pickups, err := h.pickups.ListByFoodItem(c.Request.Context(), foodID)
	h.respondList(c, pickups, err, "fetching pickups for food item")
}

func (h *PickupHandler) ListScheduled(c *gin.Context) {
	pickups, err := h.pickups.ListScheduled(c.Request.Context())
	h.respondList(c, pickups, err, "fetching scheduled pickups")
}

func (h *PickupHandler) ListToday(c *gin.Context) {
	pickups, err := h.pickups.ListToday(c.Request.Context())
	h.respondList(c, pickups, err, "fetching today's pickups")
}

// ListUpcoming returns scheduled pickups within ?days= (default 7).
func (h *PickupHandler) ListUpcoming(c *gin.Context) {
	days, ok := intQuery(c, "days", 7)
	if !ok {
		return
	}
	pickups, err := h.pickups.ListUpcoming(c.Request.Context(), days)
	h.respondList(c, pickups, err, "fetching upcoming pickups")
}

func (h *PickupHandler) Search(c *gin.Context) {
	pickups, err := h.pickups.Search(c.Request.Context(), c.Query("query"))
	h.respondList(c, pickups, err, "searching pickups")
}

func (h *PickupHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req PickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	pickup, err := h.pickups.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "updating pickup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup updated successfully", "pickup": pickup})
}

func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	pickup, err := h.pickups.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "updating pickup status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup status updated successfully", "pickup": pickup})
}

func (h *PickupHandler) Complete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	pickup, err := h.pickups.Complete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "completing pickup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup completed successfully", "pickup": pickup})
}

// Cancel accepts an optional {"reason"} body.
func (h *PickupHandler) Cancel(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req CancelRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	pickup, err := h.pickups.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "cancelling pickup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup cancelled successfully", "pickup": pickup})
}

func (h *PickupHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.pickups.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, pickupNotFound, "deleting pickup")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup deleted successfully"})
}

func (h *PickupHandler) Stats(c *gin.Context) {
	stats, err := h.pickups.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, "computing pickup stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *PickupHandler) respondList(c *gin.Context, pickups []models.PickupSchedule, err error, action string) {
	if err != nil {
		respondError(c, h.logger, err, pickupNotFound, action)
		return
	}
	c.JSON(http.StatusOK, pickups)
}
