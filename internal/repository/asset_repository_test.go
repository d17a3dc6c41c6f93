package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjomoments/studio-api/internal/model"
)

func TestAssetRepository_CreateListTotal(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewAssetRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Asset{
		Name: "Canon R5", Category: "camera", Value: 3900, Supplier: "B&H",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Asset{
		Name: "Godox AD200", Category: "lighting", Value: 300,
	})
	require.NoError(t, err)

	assets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 2)

	total, err := repo.TotalValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4200.0, total)
}

func TestAssetRepository_Delete(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewAssetRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, &model.Asset{
		Name: "Tripod", Category: "equipment", Value: 150,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrAssetNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{
		Name:         "Benjo",
		Email:        "benjo@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         "admin",
	})
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "benjo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Benjo", u.Name)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuditRepository_CreateAndListRecent(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewAuditRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &model.AuditEntry{
			UserEmail:  "benjo@example.com",
			Action:     "create",
			EntityType: "income",
			EntityID:   int64(i + 1),
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(5), entries[0].EntityID)
}
