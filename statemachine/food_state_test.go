package statemachine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCanClaim(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"AVAILABLE", false},
		{"available", false},
		{"CLAIMED", true},
		{"IN_TRANSIT", true},
		{"DELIVERED", true},
		{"", true},
		{"something-else", true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := CanClaim(tt.status)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClaimableStatuses(t *testing.T) {
	assert.Equal(t, []string{"AVAILABLE"}, ClaimableStatuses())
}

func TestLifecycleStartsFromKnownStatuses(t *testing.T) {
	known := map[string]bool{}
	for _, s := range FoodStatuses() {
		known[s] = true
	}
	for _, tr := range FoodLifecycle() {
		assert.True(t, known[tr.From], "unknown from status %s", tr.From)
		assert.True(t, known[tr.To], "unknown to status %s", tr.To)
	}

	pickup := map[string]bool{}
	for _, s := range PickupStatuses() {
		pickup[s] = true
	}
	for _, tr := range PickupLifecycle() {
		assert.True(t, pickup[tr.From])
		assert.True(t, pickup[tr.To])
	}
}

func TestPickupLifecycle(t *testing.T) {
	want := []Transition{
		{From: "Scheduled", To: "Completed", Actor: "charity"},
		{From: "Scheduled", To: "Cancelled", Actor: "charity"},
	}
	if diff := cmp.Diff(want, PickupLifecycle()); diff != "" {
		t.Errorf("PickupLifecycle() mismatch (-want +got):\n%s", diff)
	}
}

func TestFoodStatusesOrder(t *testing.T) {
	want := []string{"AVAILABLE", "CLAIMED", "IN_TRANSIT", "DELIVERED", "EXPIRED"}
	if diff := cmp.Diff(want, FoodStatuses()); diff != "" {
		t.Errorf("FoodStatuses() mismatch (-want +got):\n%s", diff)
	}
}
