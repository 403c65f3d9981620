package repository_test

import (
	"context"
	"testing"

	"sustainshare-api/mocks"
	"sustainshare-api/models"
	"sustainshare-api/ports"
	"sustainshare-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CRUD(t *testing.T) {
	repo := repository.NewFoodItemRepository(mocks.NewTestDB(t))
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	item := &models.FoodItem{Name: "Bread", Category: "BAKERY", DonorID: "d1", Status: models.FoodAvailable}
	saved, err := repo.Save(ctx, item)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bread", got.Name)

	got.Name = "Sourdough"
	_, err = repo.Save(ctx, got)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Sourdough", all[0].Name)

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	_, err = repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, saved.ID), ports.ErrNotFound)

	exists, err = repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_FindBy(t *testing.T) {
	repo := repository.NewPickupRepository(mocks.NewTestDB(t))
	ctx := context.Background()

	for _, p := range []models.PickupSchedule{
		{FoodItemID: 1, CharityID: "c1", Status: models.PickupScheduled},
		{FoodItemID: 2, CharityID: "c2", Status: models.PickupScheduled},
		{FoodItemID: 1, CharityID: "c2", Status: models.PickupCompleted},
	} {
		_, err := repo.Save(ctx, &p)
		require.NoError(t, err)
	}

	byCharity, err := repo.FindBy(ctx, "charity_id", "c2")
	require.NoError(t, err)
	require.Len(t, byCharity, 2)
	assert.Less(t, byCharity[0].ID, byCharity[1].ID)

	byFood, err := repo.FindBy(ctx, "food_item_id", uint(1))
	require.NoError(t, err)
	assert.Len(t, byFood, 2)

	none, err := repo.FindBy(ctx, "charity_id", "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserRepository(t *testing.T) {
	repo := repository.NewUserRepository(mocks.NewTestDB(t))
	ctx := context.Background()

	user := &models.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
		Role:     models.RoleDonor,
		Active:   true,
	}
	_, err := repo.Save(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)
	assert.True(t, found.Active)

	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	ok, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	// Saving an existing id updates in place, including false booleans.
	found.Active = false
	_, err = repo.Save(ctx, found)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
}
