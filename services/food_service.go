package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sustainshare-api/models"
	"sustainshare-api/ports"
	"sustainshare-api/statemachine"
)

const defaultExpiringHours = 24

type FoodItemService struct {
	foodRepo ports.FoodItemRepository
}

var _ ports.FoodItemService = (*FoodItemService)(nil)

func NewFoodItemService(foodRepo ports.FoodItemRepository) *FoodItemService {
	return &FoodItemService{foodRepo: foodRepo}
}

// Create stores a new food item, defaulting status to AVAILABLE and
// createdAt to now.
func (s *FoodItemService) Create(ctx context.Context, item models.FoodItem) (*models.FoodItem, error) {
	item.ID = 0
	item.Category = normalizeCategory(item.Category)
	item.Status = strings.ToUpper(strings.TrimSpace(item.Status))
	if item.Status == "" {
		item.Status = models.FoodAvailable
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	saved, err := s.foodRepo.Save(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("create food item: %w", err)
	}
	return saved, nil
}

func (s *FoodItemService) List(ctx context.Context) ([]models.FoodItem, error) {
	return s.foodRepo.FindAll(ctx)
}

func (s *FoodItemService) Get(ctx context.Context, id uint) (*models.FoodItem, error) {
	return s.foodRepo.FindByID(ctx, id)
}

func (s *FoodItemService) ListAvailable(ctx context.Context) ([]models.FoodItem, error) {
	return s.ListByStatus(ctx, models.FoodAvailable)
}

func (s *FoodItemService) ListByDonor(ctx context.Context, donorID string) ([]models.FoodItem, error) {
	return s.foodRepo.FindBy(ctx, "donor_id", donorID)
}

func (s *FoodItemService) ListByCategory(ctx context.Context, category string) ([]models.FoodItem, error) {
	return s.foodRepo.FindBy(ctx, "category", normalizeCategory(category))
}

func (s *FoodItemService) ListByStatus(ctx context.Context, status string) ([]models.FoodItem, error) {
	return s.foodRepo.FindBy(ctx, "status", strings.ToUpper(status))
}

// Search does a case-insensitive substring match over the descriptive fields.
func (s *FoodItemService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("Query is required")
	}
	items, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(f *models.FoodItem) bool {
		return containsFold(f.Name, query) ||
			containsFold(f.Description, query) ||
			containsFold(f.Category, query) ||
			containsFold(f.PickupLocation, query)
	}), nil
}

// ListExpiring returns items whose expiry falls within the next hours.
// Items already past expiry are excluded.
func (s *FoodItemService) ListExpiring(ctx context.Context, hours int) ([]models.FoodItem, error) {
	if hours <= 0 {
		hours = defaultExpiringHours
	}
	items, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	cutoff := now.Add(time.Duration(hours) * time.Hour)
	return filter(items, func(f *models.FoodItem) bool {
		return f.ExpiryTime != nil && f.ExpiryTime.After(now) && !f.ExpiryTime.After(cutoff)
	}), nil
}

// Update merges the non-empty fields of changes into the stored item.
func (s *FoodItemService) Update(ctx context.Context, id uint, changes models.FoodItem) (*models.FoodItem, error) {
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = mergeString(item.Name, changes.Name)
	item.Description = mergeString(item.Description, changes.Description)
	item.Quantity = mergeString(item.Quantity, changes.Quantity)
	item.Category = mergeString(item.Category, normalizeCategory(changes.Category))
	item.PickupLocation = mergeString(item.PickupLocation, changes.PickupLocation)
	item.Allergens = mergeString(item.Allergens, changes.Allergens)
	item.DonorID = mergeString(item.DonorID, changes.DonorID)
	item.ClaimedBy = mergeString(item.ClaimedBy, changes.ClaimedBy)
	if changes.Status != "" {
		item.Status = strings.ToUpper(strings.TrimSpace(changes.Status))
	}
	if changes.ExpiryTime != nil {
		item.ExpiryTime = changes.ExpiryTime
	}
	if changes.Latitude != nil {
		item.Latitude = changes.Latitude
	}
	if changes.Longitude != nil {
		item.Longitude = changes.Longitude
	}
	if changes.EstimatedPeopleFed != 0 {
		item.EstimatedPeopleFed = changes.EstimatedPeopleFed
	}

	return s.save(ctx, item)
}

func (s *FoodItemService) UpdateStatus(ctx context.Context, id uint, status string) (*models.FoodItem, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return nil, validationError("Status cannot be empty")
	}
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Status = status
	return s.save(ctx, item)
}

// Claim hands an item to a charity. Only items in a claimable status can be
// claimed; anything else fails with ErrNotClaimable.
func (s *FoodItemService) Claim(ctx context.Context, id uint, charityID string) (*models.FoodItem, error) {
	charityID = strings.TrimSpace(charityID)
	if charityID == "" {
		return nil, validationError("Charity ID is required")
	}
	item, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanClaim(item.Status); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrNotClaimable, err)
	}

	now := time.Now()
	item.Status = models.FoodClaimed
	item.ClaimedBy = charityID
	item.ClaimedAt = &now
	return s.save(ctx, item)
}

func (s *FoodItemService) Delete(ctx context.Context, id uint) error {
	return s.foodRepo.DeleteByID(ctx, id)
}

func (s *FoodItemService) Stats(ctx context.Context) (*ports.FoodStats, error) {
	items, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.FoodStats{
		TotalItems: len(items),
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, f := range items {
		stats.ByStatus[f.Status]++
		if category := normalizeCategory(f.Category); category != "" {
			stats.ByCategory[category]++
		}
		switch f.Status {
		case models.FoodAvailable:
			stats.Available++
		case models.FoodClaimed:
			stats.Claimed++
		}
	}
	return stats, nil
}

func (s *FoodItemService) save(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error) {
	saved, err := s.foodRepo.Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("save food item %d: %w", item.ID, err)
	}
	return saved, nil
}

// Categories are stored upper-cased so lookups by path value match whatever
// case the donor used.
func normalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}
