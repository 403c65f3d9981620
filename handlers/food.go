package handlers

import (
	"net/http"
	"strings"

	"sustainshare-api/models"
	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FoodItemRequest is the body of POST and PUT /api/food. donorId is only
// required on create.
type FoodItemRequest struct {
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Quantity           string        `json:"quantity"`
	Category           string        `json:"category"`
	PickupLocation     string        `json:"pickupLocation"`
	Allergens          string        `json:"allergens"`
	Latitude           *float64      `json:"latitude"`
	Longitude          *float64      `json:"longitude"`
	EstimatedPeopleFed int           `json:"estimatedPeopleFed"`
	DonorID            string        `json:"donorId"`
	ClaimedBy          string        `json:"claimedBy"`
	Status             string        `json:"status"`
	ExpiryTime         *FlexibleTime `json:"expiryTime"`
	CreatedAt          *FlexibleTime `json:"createdAt"`
}

func (r FoodItemRequest) toModel() models.FoodItem {
	item := models.FoodItem{
		Name:               r.Name,
		Description:        r.Description,
		Quantity:           r.Quantity,
		Category:           r.Category,
		PickupLocation:     r.PickupLocation,
		Allergens:          r.Allergens,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		EstimatedPeopleFed: r.EstimatedPeopleFed,
		DonorID:            strings.TrimSpace(r.DonorID),
		ClaimedBy:          r.ClaimedBy,
		Status:             r.Status,
		ExpiryTime:         r.ExpiryTime.Ptr(),
	}
	if created := r.CreatedAt.Ptr(); created != nil {
		item.CreatedAt = *created
	}
	return item
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ClaimRequest struct {
	CharityID string `json:"charityId"`
}

type FoodHandler struct {
	foods  ports.FoodItemService
	logger *zap.Logger
}

func NewFoodHandler(foods ports.FoodItemService, logger *zap.Logger) *FoodHandler {
	return &FoodHandler{foods: foods, logger: logger}
}

const foodNotFound = "Food item not found"

// Create adds a food item posted by a donor
func (h *FoodHandler) Create(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.DonorID) == "" {
		badRequest(c, "Donor ID is required")
		return
	}

	item, err := h.foods.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "adding food item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item added successfully", "foodItem": item})
}

func (h *FoodHandler) List(c *gin.Context) {
	items, err := h.foods.List(c.Request.Context())
	h.respondList(c, items, err, "fetching food items")
}

func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "fetching food item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *FoodHandler) ListAvailable(c *gin.Context) {
	items, err := h.foods.ListAvailable(c.Request.Context())
	h.respondList(c, items, err, "fetching available food")
}

func (h *FoodHandler) ListByDonor(c *gin.Context) {
	items, err := h.foods.ListByDonor(c.Request.Context(), c.Param("donorId"))
	h.respondList(c, items, err, "fetching donor food items")
}

func (h *FoodHandler) ListByCategory(c *gin.Context) {
	items, err := h.foods.ListByCategory(c.Request.Context(), c.Param("category"))
	h.respondList(c, items, err, "fetching food by category")
}

func (h *FoodHandler) ListByStatus(c *gin.Context) {
	items, err := h.foods.ListByStatus(c.Request.Context(), c.Param("status"))
	h.respondList(c, items, err, "fetching food by status")
}

func (h *FoodHandler) Search(c *gin.Context) {
	items, err := h.foods.Search(c.Request.Context(), c.Query("query"))
	h.respondList(c, items, err, "searching food items")
}

// ListExpiring returns items expiring within ?hours= (default 24).
func (h *FoodHandler) ListExpiring(c *gin.Context) {
	hours, ok := intQuery(c, "hours", 24)
	if !ok {
		return
	}
	items, err := h.foods.ListExpiring(c.Request.Context(), hours)
	h.respondList(c, items, err, "fetching expiring food")
}

func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	item, err := h.foods.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "updating food item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully", "foodItem": item})
}

func (h *FoodHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	item, err := h.foods.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "updating food status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food status updated successfully", "foodItem": item})
}

// Claim hands an AVAILABLE item to the charity in the body
func (h *FoodHandler) Claim(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req ClaimRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	item, err := h.foods.Claim(c.Request.Context(), id, req.CharityID)
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "claiming food item")
		return
	}
	h.logger.Info("food item claimed", zap.Uint("food_item_id", item.ID), zap.String("charity_id", item.ClaimedBy))
	c.JSON(http.StatusOK, gin.H{"message": "Food item claimed successfully", "foodItem": item})
}

func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.foods.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, foodNotFound, "deleting food item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}

func (h *FoodHandler) Stats(c *gin.Context) {
	stats, err := h.foods.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, "computing food stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FoodHandler) respondList(c *gin.Context, items []models.FoodItem, err error, action string) {
	if err != nil {
		respondError(c, h.logger, err, foodNotFound, action)
		return
	}
	c.JSON(http.StatusOK, items)
}
