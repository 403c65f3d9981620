package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sustainshare-api/models"
	"sustainshare-api/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(userRepo ports.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register stores a new user. Email, username and id are checked one after
// another before the write; the checks are not atomic with the save.
// Usernames default to the id.
func (s *UserService) Register(ctx context.Context, user models.User) (*models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return nil, validationError("Email is required")
	}
	if user.Password == "" {
		return nil, validationError("Password is required")
	}

	idProvided := user.ID != ""
	if !idProvided {
		user.ID = uuid.NewString()
	}
	if user.Username == "" {
		user.Username = user.ID
	}
	user.Role = normalizeRole(string(user.Role))
	if user.Role == "" {
		user.Role = models.RoleDonor
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	if exists {
		return nil, ports.ErrEmailExists
	}

	// When the username is the id (defaulted, or sent that way by the
	// frontend) a clash is reported as a duplicate id.
	if idProvided && user.Username == user.ID {
		if err := s.checkID(ctx, user.ID); err != nil {
			return nil, err
		}
		if err := s.checkUsername(ctx, user.Username); err != nil {
			return nil, err
		}
	} else {
		if err := s.checkUsername(ctx, user.Username); err != nil {
			return nil, err
		}
		if idProvided {
			if err := s.checkID(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)
	user.Active = true

	saved, err := s.userRepo.Save(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return saved, nil
}

func (s *UserService) checkUsername(ctx context.Context, username string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if exists {
		return ports.ErrUsernameExists
	}
	return nil
}

func (s *UserService) checkID(ctx context.Context, id string) error {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if exists {
		return ports.ErrUserIDExists
	}
	return nil
}

// Authenticate returns the user whose email and password both match.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, ports.ErrNotFound) {
		return nil, ports.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ports.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ports.ErrUserInactive
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(users, func(u *models.User) bool {
		return strings.EqualFold(string(u.Role), role)
	}), nil
}

func (s *UserService) Update(ctx context.Context, id string, changes ports.UserChanges) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(changes.Email); email != "" && email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if exists {
			return nil, ports.ErrEmailExists
		}
		user.Email = email
	}
	if username := strings.TrimSpace(changes.Username); username != "" && username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if exists {
			return nil, ports.ErrUsernameExists
		}
		user.Username = username
	}
	if changes.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(changes.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
	}
	user.Name = mergeString(user.Name, changes.Name)
	user.Phone = mergeString(user.Phone, changes.Phone)
	user.Address = mergeString(user.Address, changes.Address)

	return s.save(ctx, user)
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*models.User, error) {
	newRole := normalizeRole(role)
	if newRole == "" {
		return nil, validationError("Role cannot be empty")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = newRole
	return s.save(ctx, user)
}

func (s *UserService) Activate(ctx context.Context, id string) (*models.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *UserService) Deactivate(ctx context.Context, id string) (*models.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.DeleteByID(ctx, id)
}

func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := &ports.UserStats{
		TotalUsers: len(users),
		ByRole:     map[string]int{},
	}
	for _, u := range users {
		if u.Active {
			stats.ActiveUsers++
		} else {
			stats.InactiveUsers++
		}
		stats.ByRole[string(u.Role)]++
	}
	return stats, nil
}

func (s *UserService) setActive(ctx context.Context, id string, active bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Active = active
	return s.save(ctx, user)
}

func (s *UserService) save(ctx context.Context, user *models.User) (*models.User, error) {
	saved, err := s.userRepo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user %s: %w", user.ID, err)
	}
	return saved, nil
}

func normalizeRole(role string) models.UserRole {
	return models.UserRole(strings.ToUpper(strings.TrimSpace(role)))
}
