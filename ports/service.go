package ports

import (
	"context"

	"sustainshare-api/models"
)

type UserService interface {
	Register(ctx context.Context, user models.User) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Update(ctx context.Context, id string, changes UserChanges) (*models.User, error)
	UpdateRole(ctx context.Context, id, role string) (*models.User, error)
	Activate(ctx context.Context, id string) (*models.User, error)
	Deactivate(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*UserStats, error)
}

type FoodItemService interface {
	Create(ctx context.Context, item models.FoodItem) (*models.FoodItem, error)
	List(ctx context.Context) ([]models.FoodItem, error)
	Get(ctx context.Context, id uint) (*models.FoodItem, error)
	ListAvailable(ctx context.Context) ([]models.FoodItem, error)
	ListByDonor(ctx context.Context, donorID string) ([]models.FoodItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.FoodItem, error)
	ListByStatus(ctx context.Context, status string) ([]models.FoodItem, error)
	Search(ctx context.Context, query string) ([]models.FoodItem, error)
	ListExpiring(ctx context.Context, hours int) ([]models.FoodItem, error)
	Update(ctx context.Context, id uint, changes models.FoodItem) (*models.FoodItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.FoodItem, error)
	Claim(ctx context.Context, id uint, charityID string) (*models.FoodItem, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*FoodStats, error)
}

type PickupService interface {
	Schedule(ctx context.Context, pickup models.PickupSchedule) (*models.PickupSchedule, error)
	List(ctx context.Context) ([]models.PickupSchedule, error)
	Get(ctx context.Context, id uint) (*models.PickupSchedule, error)
	ListByCharity(ctx context.Context, charityID string) ([]models.PickupSchedule, error)
	ListByStatus(ctx context.Context, status string) ([]models.PickupSchedule, error)
	ListByFoodItem(ctx context.Context, foodItemID uint) ([]models.PickupSchedule, error)
	ListScheduled(ctx context.Context) ([]models.PickupSchedule, error)
	ListToday(ctx context.Context) ([]models.PickupSchedule, error)
	ListUpcoming(ctx context.Context, days int) ([]models.PickupSchedule, error)
	Search(ctx context.Context, query string) ([]models.PickupSchedule, error)
	Update(ctx context.Context, id uint, changes models.PickupSchedule) (*models.PickupSchedule, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.PickupSchedule, error)
	Complete(ctx context.Context, id uint) (*models.PickupSchedule, error)
	Cancel(ctx context.Context, id uint, reason string) (*models.PickupSchedule, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*PickupStats, error)
}

type DonationLogService interface {
	Save(ctx context.Context, log models.DonationLog) (*models.DonationLog, error)
	List(ctx context.Context) ([]models.DonationLog, error)
	Get(ctx context.Context, id uint) (*models.DonationLog, error)
	Delete(ctx context.Context, id uint) error
}

// UserChanges carries the fields PUT /api/users/{id} may change. Empty
// strings leave the stored value alone.
type UserChanges struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type UserStats struct {
	TotalUsers    int            `json:"totalUsers"`
	ActiveUsers   int            `json:"activeUsers"`
	InactiveUsers int            `json:"inactiveUsers"`
	ByRole        map[string]int `json:"byRole"`
}

type FoodStats struct {
	TotalItems int            `json:"totalItems"`
	Available  int            `json:"available"`
	Claimed    int            `json:"claimed"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
}

type PickupStats struct {
	TotalPickups int            `json:"totalPickups"`
	Scheduled    int            `json:"scheduled"`
	Completed    int            `json:"completed"`
	Cancelled    int            `json:"cancelled"`
	ByStatus     map[string]int `json:"byStatus"`
}
