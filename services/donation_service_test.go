package services_test

import (
	"context"
	"testing"

	"sustainshare-api/mocks"
	"sustainshare-api/models"
	"sustainshare-api/ports"
	"sustainshare-api/repository"
	"sustainshare-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationLogService(t *testing.T) {
	svc := services.NewDonationLogService(repository.NewDonationLogRepository(mocks.NewTestDB(t)))
	ctx := context.Background()

	entry, err := svc.Save(ctx, models.DonationLog{DonorID: "d1", CharityID: "c1", PeopleFed: 20})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.DonatedAt.IsZero())

	got, err := svc.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.PeopleFed)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, entry.ID))
	_, err = svc.Get(ctx, entry.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
