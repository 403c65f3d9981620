package models

import "time"

// Known food item statuses. Status is stored as free text, so other values
// are accepted and round-trip unchanged.
const (
	FoodAvailable = "AVAILABLE"
	FoodClaimed   = "CLAIMED"
	FoodInTransit = "IN_TRANSIT"
	FoodDelivered = "DELIVERED"
	FoodExpired   = "EXPIRED"
)

type FoodItem struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Quantity           string     `json:"quantity"`
	Category           string     `json:"category" gorm:"index"`
	PickupLocation     string     `json:"pickupLocation"`
	Allergens          string     `json:"allergens"`
	Latitude           *float64   `json:"latitude,omitempty"`
	Longitude          *float64   `json:"longitude,omitempty"`
	EstimatedPeopleFed int        `json:"estimatedPeopleFed"`
	DonorID            string     `json:"donorId" gorm:"index"`
	ClaimedBy          string     `json:"claimedBy"`
	ClaimedAt          *time.Time `json:"claimedAt,omitempty"`
	Status             string     `json:"status" gorm:"index;not null"`
	ExpiryTime         *time.Time `json:"expiryTime,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
