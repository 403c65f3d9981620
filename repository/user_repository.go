package repository

import (
	"context"

	"sustainshare-api/models"
	"sustainshare-api/ports"

	"gorm.io/gorm"
)

type UserRepository struct {
	*Repository[models.User, string]
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: New[models.User, string](db)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.FindBy(ctx, "email", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ports.ErrNotFound
	}
	return &users[0], nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func NewFoodItemRepository(db *gorm.DB) ports.FoodItemRepository {
	return New[models.FoodItem, uint](db)
}

func NewPickupRepository(db *gorm.DB) ports.PickupRepository {
	return New[models.PickupSchedule, uint](db)
}

func NewDonationLogRepository(db *gorm.DB) ports.DonationLogRepository {
	return New[models.DonationLog, uint](db)
}
