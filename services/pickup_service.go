package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sustainshare-api/models"
	"sustainshare-api/ports"
)

const (
	defaultUpcomingDays = 7
	defaultCancelReason = "No reason provided"
)

type PickupService struct {
	pickupRepo ports.PickupRepository
}

var _ ports.PickupService = (*PickupService)(nil)

func NewPickupService(pickupRepo ports.PickupRepository) *PickupService {
	return &PickupService{pickupRepo: pickupRepo}
}

// Schedule stores a new pickup, defaulting status to "Scheduled" and
// createdAt to now.
func (s *PickupService) Schedule(ctx context.Context, pickup models.PickupSchedule) (*models.PickupSchedule, error) {
	pickup.ID = 0
	pickup.Status = strings.TrimSpace(pickup.Status)
	if pickup.Status == "" {
		pickup.Status = models.PickupScheduled
	}
	if pickup.CreatedAt.IsZero() {
		pickup.CreatedAt = time.Now()
	}
	saved, err := s.pickupRepo.Save(ctx, &pickup)
	if err != nil {
		return nil, fmt.Errorf("schedule pickup: %w", err)
	}
	return saved, nil
}

func (s *PickupService) List(ctx context.Context) ([]models.PickupSchedule, error) {
	return s.pickupRepo.FindAll(ctx)
}

func (s *PickupService) Get(ctx context.Context, id uint) (*models.PickupSchedule, error) {
	return s.pickupRepo.FindByID(ctx, id)
}

func (s *PickupService) ListByCharity(ctx context.Context, charityID string) ([]models.PickupSchedule, error) {
	return s.pickupRepo.FindBy(ctx, "charity_id", charityID)
}

func (s *PickupService) ListByStatus(ctx context.Context, status string) ([]models.PickupSchedule, error) {
	pickups, err := s.pickupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(pickups, func(p *models.PickupSchedule) bool {
		return strings.EqualFold(p.Status, status)
	}), nil
}

func (s *PickupService) ListByFoodItem(ctx context.Context, foodItemID uint) ([]models.PickupSchedule, error) {
	return s.pickupRepo.FindBy(ctx, "food_item_id", foodItemID)
}

func (s *PickupService) ListScheduled(ctx context.Context) ([]models.PickupSchedule, error) {
	return s.ListByStatus(ctx, models.PickupScheduled)
}

// ListToday returns pickups whose scheduled time falls on the current local day.
func (s *PickupService) ListToday(ctx context.Context) ([]models.PickupSchedule, error) {
	pickups, err := s.pickupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	return filter(pickups, func(p *models.PickupSchedule) bool {
		return p.ScheduledTime != nil && !p.ScheduledTime.Before(start) && p.ScheduledTime.Before(end)
	}), nil
}

// ListUpcoming returns still-scheduled pickups due within the next days.
func (s *PickupService) ListUpcoming(ctx context.Context, days int) ([]models.PickupSchedule, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}
	pickups, err := s.pickupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, days)
	return filter(pickups, func(p *models.PickupSchedule) bool {
		return strings.EqualFold(p.Status, models.PickupScheduled) &&
			p.ScheduledTime != nil &&
			p.ScheduledTime.After(now) &&
			!p.ScheduledTime.After(cutoff)
	}), nil
}

func (s *PickupService) Search(ctx context.Context, query string) ([]models.PickupSchedule, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("Query is required")
	}
	pickups, err := s.pickupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(pickups, func(p *models.PickupSchedule) bool {
		return containsFold(p.CharityID, query) ||
			containsFold(p.Status, query) ||
			containsFold(p.Notes, query) ||
			containsFold(p.CancellationReason, query) ||
			strconv.FormatUint(uint64(p.FoodItemID), 10) == query
	}), nil
}

// Update merges the non-empty fields of changes into the stored pickup.
func (s *PickupService) Update(ctx context.Context, id uint, changes models.PickupSchedule) (*models.PickupSchedule, error) {
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if changes.FoodItemID != 0 {
		pickup.FoodItemID = changes.FoodItemID
	}
	if changes.ScheduledTime != nil {
		pickup.ScheduledTime = changes.ScheduledTime
	}
	pickup.CharityID = mergeString(pickup.CharityID, changes.CharityID)
	pickup.Status = mergeString(pickup.Status, strings.TrimSpace(changes.Status))
	pickup.Notes = mergeString(pickup.Notes, changes.Notes)
	pickup.CancellationReason = mergeString(pickup.CancellationReason, changes.CancellationReason)
	return s.save(ctx, pickup)
}

func (s *PickupService) UpdateStatus(ctx context.Context, id uint, status string) (*models.PickupSchedule, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, validationError("Status cannot be empty")
	}
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pickup.Status = status
	return s.save(ctx, pickup)
}

func (s *PickupService) Complete(ctx context.Context, id uint) (*models.PickupSchedule, error) {
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	pickup.Status = models.PickupCompleted
	pickup.CompletedAt = &now
	return s.save(ctx, pickup)
}

func (s *PickupService) Cancel(ctx context.Context, id uint, reason string) (*models.PickupSchedule, error) {
	pickup, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		reason = defaultCancelReason
	}
	now := time.Now()
	pickup.Status = models.PickupCancelled
	pickup.CancellationReason = reason
	pickup.CancelledAt = &now
	return s.save(ctx, pickup)
}

func (s *PickupService) Delete(ctx context.Context, id uint) error {
	return s.pickupRepo.DeleteByID(ctx, id)
}

func (s *PickupService) Stats(ctx context.Context) (*ports.PickupStats, error) {
	pickups, err := s.pickupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.PickupStats{
		TotalPickups: len(pickups),
		ByStatus:     map[string]int{},
	}
	for _, p := range pickups {
		stats.ByStatus[p.Status]++
		switch {
		case strings.EqualFold(p.Status, models.PickupScheduled):
			stats.Scheduled++
		case strings.EqualFold(p.Status, models.PickupCompleted):
			stats.Completed++
		case strings.EqualFold(p.Status, models.PickupCancelled):
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (s *PickupService) save(ctx context.Context, pickup *models.PickupSchedule) (*models.PickupSchedule, error) {
	saved, err := s.pickupRepo.Save(ctx, pickup)
	if err != nil {
		return nil, fmt.Errorf("save pickup %d: %w", pickup.ID, err)
	}
	return saved, nil
}
