package models

import "time"

// DonationLog records a finished donation. It is written once and never
// updated, and it does not follow FoodItem or PickupSchedule state.
type DonationLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	DonorID    string    `json:"donorId"`
	CharityID  string    `json:"charityId"`
	FoodItemID *uint     `json:"foodItemId,omitempty"`
	PickupID   *uint     `json:"pickupId,omitempty"`
	Quantity   string    `json:"quantity"`
	PeopleFed  int       `json:"peopleFed"`
	Notes      string    `json:"notes"`
	DonatedAt  time.Time `json:"donatedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
