// Package mocks provides test doubles for the repository ports and a helper
// that opens a migrated in-memory database.
package mocks

import (
	"context"
	"sort"
	"sync"

	"sustainshare-api/models"
	"sustainshare-api/ports"
)

// MockUserRepository implements ports.UserRepository in memory. It records
// calls and lets tests inject errors per method.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User

	SaveCalls             []models.User
	ExistsByEmailCalls    []string
	ExistsByUsernameCalls []string
	ExistsByIDCalls       []string

	SaveError    error
	FindError    error
	ExistsError  error
	DeleteError  error
	FindAllError error
}

var _ ports.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]models.User)}
}

// SeedUser stores user without recording a Save call.
func (m *MockUserRepository) SeedUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls = append(m.SaveCalls, *user)
	if m.SaveError != nil {
		return nil, m.SaveError
	}
	m.users[user.ID] = *user
	return user, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllError != nil {
		return nil, m.FindAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &u, nil
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	m.ExistsByIDCalls = append(m.ExistsByIDCalls, id)
	m.mu.Unlock()

	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.users[id]; !ok {
		return ports.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// FindBy supports the columns the services query: email, username, role.
func (m *MockUserRepository) FindBy(ctx context.Context, column string, value any) ([]models.User, error) {
	if m.FindError != nil {
		return nil, m.FindError
	}
	all, _ := m.FindAll(ctx)
	out := make([]models.User, 0)
	for _, u := range all {
		var field string
		switch column {
		case "email":
			field = u.Email
		case "username":
			field = u.Username
		case "role":
			field = string(u.Role)
		case "id":
			field = u.ID
		}
		if v, ok := value.(string); ok && field == v {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := m.FindBy(ctx, "email", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ports.ErrNotFound
	}
	return &users[0], nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	m.ExistsByEmailCalls = append(m.ExistsByEmailCalls, email)
	m.mu.Unlock()

	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	users, err := m.FindBy(ctx, "email", email)
	return len(users) > 0, err
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	m.ExistsByUsernameCalls = append(m.ExistsByUsernameCalls, username)
	m.mu.Unlock()

	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	users, err := m.FindBy(ctx, "username", username)
	return len(users) > 0, err
}

// Reset clears stored users, call tracking and injected errors.
func (m *MockUserRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]models.User)
	m.SaveCalls = nil
	m.ExistsByEmailCalls = nil
	m.ExistsByUsernameCalls = nil
	m.ExistsByIDCalls = nil
	m.SaveError = nil
	m.FindError = nil
	m.ExistsError = nil
	m.DeleteError = nil
	m.FindAllError = nil
}
