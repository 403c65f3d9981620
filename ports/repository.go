package ports

import (
	"context"

	"sustainshare-api/models"
)

// CRUDRepository is the persistence contract shared by every entity kind.
// FindByID returns ErrNotFound when no row matches; DeleteByID does the same
// when there was nothing to delete.
type CRUDRepository[T any, ID comparable] interface {
	Save(ctx context.Context, entity *T) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id ID) (*T, error)
	ExistsByID(ctx context.Context, id ID) (bool, error)
	DeleteByID(ctx context.Context, id ID) error
	FindBy(ctx context.Context, column string, value any) ([]T, error)
}

type UserRepository interface {
	CRUDRepository[models.User, string]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type FoodItemRepository = CRUDRepository[models.FoodItem, uint]

type PickupRepository = CRUDRepository[models.PickupSchedule, uint]

type DonationLogRepository = CRUDRepository[models.DonationLog, uint]
