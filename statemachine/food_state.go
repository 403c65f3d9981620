package statemachine

import (
	"fmt"
	"strings"

	"sustainshare-api/models"
)

// Transition describes a status change in the usual food item lifecycle and
// who normally performs it. Only the claim transition is enforced; status
// updates through PUT /api/food/{id}/status accept any value.
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Actor string `json:"actor"`
}

var foodLifecycle = []Transition{
	{From: models.FoodAvailable, To: models.FoodClaimed, Actor: "charity"},
	{From: models.FoodAvailable, To: models.FoodExpired, Actor: "system"},
	{From: models.FoodClaimed, To: models.FoodInTransit, Actor: "charity"},
	{From: models.FoodInTransit, To: models.FoodDelivered, Actor: "charity"},
}

var pickupLifecycle = []Transition{
	{From: models.PickupScheduled, To: models.PickupCompleted, Actor: "charity"},
	{From: models.PickupScheduled, To: models.PickupCancelled, Actor: "charity"},
}

// claimable lists the statuses a food item may be claimed from.
var claimable = map[string]bool{
	models.FoodAvailable: true,
}

// CanClaim reports whether an item in status may be claimed. Comparison
// ignores case because stored statuses are free text.
func CanClaim(status string) error {
	if claimable[strings.ToUpper(status)] {
		return nil
	}
	return fmt.Errorf("cannot claim an item in status %q; claimable statuses: %s",
		status, strings.Join(ClaimableStatuses(), ", "))
}

func ClaimableStatuses() []string {
	out := make([]string, 0, len(claimable))
	for _, t := range foodLifecycle {
		if claimable[t.From] && t.To == models.FoodClaimed {
			out = append(out, t.From)
		}
	}
	return out
}

// FoodStatuses returns the food statuses the frontend knows about, in
// lifecycle order.
func FoodStatuses() []string {
	return []string{
		models.FoodAvailable,
		models.FoodClaimed,
		models.FoodInTransit,
		models.FoodDelivered,
		models.FoodExpired,
	}
}

func PickupStatuses() []string {
	return []string{models.PickupScheduled, models.PickupCompleted, models.PickupCancelled}
}

// FoodLifecycle returns the documented food item transitions.
func FoodLifecycle() []Transition {
	return foodLifecycle
}

func PickupLifecycle() []Transition {
	return pickupLifecycle
}
