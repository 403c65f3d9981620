package models

import "time"

// Pickup statuses use title case, unlike food item statuses.
const (
	PickupScheduled = "Scheduled"
	PickupCompleted = "Completed"
	PickupCancelled = "Cancelled"
)

type PickupSchedule struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	FoodItemID         uint       `json:"foodItemId" gorm:"index"`
	CharityID          string     `json:"charityId" gorm:"index"`
	ScheduledTime      *time.Time `json:"scheduledTime,omitempty"`
	Status             string     `json:"status" gorm:"index;not null"`
	Notes              string     `json:"notes"`
	CancellationReason string     `json:"cancellationReason"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
