package handlers

import (
	"net/http"

	"sustainshare-api/models"
	"sustainshare-api/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DonationRequest struct {
	DonorID    string        `json:"donorId"`
	CharityID  string        `json:"charityId"`
	FoodItemID *uint         `json:"foodItemId"`
	PickupID   *uint         `json:"pickupId"`
	Quantity   string        `json:"quantity"`
	PeopleFed  int           `json:"peopleFed"`
	Notes      string        `json:"notes"`
	DonatedAt  *FlexibleTime `json:"donatedAt"`
}

type DonationHandler struct {
	donations ports.DonationLogService
	logger    *zap.Logger
}

func NewDonationHandler(donations ports.DonationLogService, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{donations: donations, logger: logger}
}

const donationNotFound = "Donation not found"

func (h *DonationHandler) Create(c *gin.Context) {
	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	entry := models.DonationLog{
		DonorID:    req.DonorID,
		CharityID:  req.CharityID,
		FoodItemID: req.FoodItemID,
		PickupID:   req.PickupID,
		Quantity:   req.Quantity,
		PeopleFed:  req.PeopleFed,
		Notes:      req.Notes,
	}
	if at := req.DonatedAt.Ptr(); at != nil {
		entry.DonatedAt = *at
	}

	saved, err := h.donations.Save(c.Request.Context(), entry)
	if err != nil {
		respondError(c, h.logger, err, donationNotFound, "logging donation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Donation logged successfully", "donation": saved})
}

func (h *DonationHandler) List(c *gin.Context) {
	logs, err := h.donations.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, donationNotFound, "fetching donations")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.donations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, donationNotFound, "fetching donation")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.donations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, donationNotFound, "deleting donation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted successfully"})
}
